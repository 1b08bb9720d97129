// Package inventory drives the admin screen: one API call per action, then a full reload.
package inventory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/catalog"
	"github.com/sakshighanekar/sweetshelf/cmd/sweetctl/internal/forms"
	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// API is the part of the SDK client used by admins.
type API interface {
	ListSweets(ctx context.Context) ([]sdk.Sweet, error)
	CreateSweet(ctx context.Context, input sdk.SweetInput) (*sdk.Sweet, error)
	UpdateSweet(ctx context.Context, id string, input sdk.SweetInput) (*sdk.Sweet, error)
	DeleteSweet(ctx context.Context, id string) error
	RestockSweet(ctx context.Context, id string, quantity int) error
}

// Controller keeps the inventory table in sync with the API.
// It never patches the table locally; every successful mutation is followed by Refresh.
// When only that Refresh fails, mutations return a *catalog.ReloadError.
type Controller struct {
	api    API
	logger *zap.Logger
	sweets []sdk.Sweet
}

// NewController creates a controller with an empty table.
func NewController(api API, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{api: api, logger: logger}
}

// Sweets returns the table from the last Refresh.
func (c *Controller) Sweets() []sdk.Sweet {
	return c.sweets
}

// Find returns the loaded sweet with id.
func (c *Controller) Find(id string) (sdk.Sweet, bool) {
	for _, s := range c.sweets {
		if s.ID == id {
			return s, true
		}
	}
	return sdk.Sweet{}, false
}

// Refresh reloads the full collection.
func (c *Controller) Refresh(ctx context.Context) error {
	sweets, err := c.api.ListSweets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sweets: %w", err)
	}
	c.sweets = sweets
	return nil
}

// Create validates form and adds a new sweet.
func (c *Controller) Create(ctx context.Context, form forms.Sweet) error {
	input, err := form.Validate()
	if err != nil {
		return err
	}
	created, err := c.api.CreateSweet(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to add sweet: %w", err)
	}
	c.logger.Info("sweet created", zap.String("id", created.ID), zap.String("name", created.Name))
	return catalog.Reloaded(c.Refresh(ctx))
}

// Update validates form and replaces the sweet with id.
func (c *Controller) Update(ctx context.Context, id string, form forms.Sweet) error {
	if id == "" {
		return &sdk.ValidationError{Field: "id", Message: "Please choose a sweet to edit"}
	}
	input, err := form.Validate()
	if err != nil {
		return err
	}
	if _, err := c.api.UpdateSweet(ctx, id, input); err != nil {
		return fmt.Errorf("failed to update %s: %w", id, err)
	}
	c.logger.Info("sweet updated", zap.String("id", id))
	return catalog.Reloaded(c.Refresh(ctx))
}

// Delete removes the sweet with id. Callers confirm with the user first.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &sdk.ValidationError{Field: "id", Message: "Please choose a sweet to delete"}
	}
	if err := c.api.DeleteSweet(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	c.logger.Info("sweet deleted", zap.String("id", id))
	return catalog.Reloaded(c.Refresh(ctx))
}

// Restock parses quantity and adds that many units to id.
func (c *Controller) Restock(ctx context.Context, id string, quantity string) error {
	if id == "" {
		return &sdk.ValidationError{Field: "id", Message: "Please choose a sweet to restock"}
	}
	n, err := forms.Restock(quantity)
	if err != nil {
		return err
	}
	if err := c.api.RestockSweet(ctx, id, n); err != nil {
		return fmt.Errorf("failed to restock %s: %w", id, err)
	}
	c.logger.Info("sweet restocked", zap.String("id", id), zap.Int("quantity", n))
	return catalog.Reloaded(c.Refresh(ctx))
}
