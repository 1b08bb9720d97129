package sdk

import "time"

// Sweet is a catalog item as returned by the API.
type Sweet struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Price     float64    `json:"price"`
	Quantity  int        `json:"quantity"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// InStock reports whether at least one unit can be purchased.
func (s Sweet) InStock() bool {
	return s.Quantity > 0
}

// SweetInput is the body for creating or replacing a sweet.
type SweetInput struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InputFrom copies the editable fields of s.
func InputFrom(s Sweet) SweetInput {
	return SweetInput{
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
		Quantity: s.Quantity,
	}
}

type restockRequest struct {
	Quantity int `json:"quantity"`
}
