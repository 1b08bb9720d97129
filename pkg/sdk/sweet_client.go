package sdk

import (
	"context"
	"fmt"
	"net/http"
)

// ListSweets returns the full catalog.
func (c *Client) ListSweets(ctx context.Context) ([]Sweet, error) {
	var sweets []Sweet
	err := c.do(ctx, request{
		op:     "list sweets",
		method: http.MethodGet,
		path:   "/sweets",
		out:    &sweets,
	})
	if err != nil {
		return nil, err
	}
	if sweets == nil {
		sweets = []Sweet{}
	}
	return sweets, nil
}

// CreateSweet adds a sweet to the inventory. Requires an ADMIN token server-side.
func (c *Client) CreateSweet(ctx context.Context, input SweetInput) (*Sweet, error) {
	var sweet Sweet
	err := c.do(ctx, request{
		op:     "create sweet",
		method: http.MethodPost,
		path:   "/sweets",
		body:   input,
		out:    &sweet,
	})
	if err != nil {
		return nil, err
	}
	return &sweet, nil
}

// UpdateSweet replaces the editable fields of the sweet with the given ID.
func (c *Client) UpdateSweet(ctx context.Context, id string, input SweetInput) (*Sweet, error) {
	if id == "" {
		return nil, fmt.Errorf("sweet ID is required")
	}
	var sweet Sweet
	err := c.do(ctx, request{
		op:         "update sweet",
		method:     http.MethodPut,
		path:       "/sweets/{id}",
		pathParams: map[string]string{"id": id},
		body:       input,
		out:        &sweet,
	})
	if err != nil {
		return nil, err
	}
	return &sweet, nil
}

// DeleteSweet removes the sweet with the given ID.
func (c *Client) DeleteSweet(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("sweet ID is required")
	}
	return c.do(ctx, request{
		op:         "delete sweet",
		method:     http.MethodDelete,
		path:       "/sweets/{id}",
		pathParams: map[string]string{"id": id},
	})
}

// PurchaseSweet buys one unit. The API decrements the quantity.
func (c *Client) PurchaseSweet(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("sweet ID is required")
	}
	return c.do(ctx, request{
		op:         "purchase sweet",
		method:     http.MethodPost,
		path:       "/sweets/{id}/purchase",
		pathParams: map[string]string{"id": id},
	})
}

// RestockSweet adds quantity units. The API increments the quantity.
func (c *Client) RestockSweet(ctx context.Context, id string, quantity int) error {
	if id == "" {
		return fmt.Errorf("sweet ID is required")
	}
	return c.do(ctx, request{
		op:         "restock sweet",
		method:     http.MethodPost,
		path:       "/sweets/{id}/restock",
		pathParams: map[string]string{"id": id},
		body:       restockRequest{Quantity: quantity},
	})
}
