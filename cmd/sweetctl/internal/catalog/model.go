package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// Source is the part of the API the storefront reads and buys from.
type Source interface {
	ListSweets(ctx context.Context) ([]sdk.Sweet, error)
	PurchaseSweet(ctx context.Context, id string) error
}

// Model holds the last fetched catalog and the active filter.
type Model struct {
	api    Source
	logger *zap.Logger

	sweets []sdk.Sweet
	filter *Compiled
}

// NewModel creates an empty model. Call Load before reading it.
func NewModel(api Source, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{api: api, logger: logger, filter: &Compiled{}}
}

// Load fetches the full collection.
func (m *Model) Load(ctx context.Context) error {
	sweets, err := m.api.ListSweets(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sweets: %w", err)
	}
	m.sweets = sweets
	m.logger.Debug("catalog loaded", zap.Int("count", len(sweets)))
	return nil
}

// SetFilter replaces the active filter.
func (m *Model) SetFilter(f Filter) error {
	compiled, err := f.Compile()
	if err != nil {
		return err
	}
	m.filter = compiled
	return nil
}

// All returns the full collection from the last Load.
func (m *Model) All() []sdk.Sweet {
	return m.sweets
}

// Visible returns the filtered view.
func (m *Model) Visible() []sdk.Sweet {
	return m.filter.Apply(m.sweets)
}

// Categories lists the categories of the full collection.
func (m *Model) Categories() []string {
	return Categories(m.sweets)
}

// Summary describes the filtered view against the full collection.
func (m *Model) Summary() string {
	return Summary(len(m.Visible()), len(m.sweets))
}

// Find returns the loaded sweet with id.
func (m *Model) Find(id string) (sdk.Sweet, bool) {
	for _, s := range m.sweets {
		if s.ID == id {
			return s, true
		}
	}
	return sdk.Sweet{}, false
}

// Purchase buys one unit of id and reloads the collection.
// A *ReloadError means the purchase went through but the reload did not.
func (m *Model) Purchase(ctx context.Context, id string) error {
	if id == "" {
		return &sdk.ValidationError{Field: "id", Message: "Please choose a sweet to purchase"}
	}
	if err := m.api.PurchaseSweet(ctx, id); err != nil {
		return fmt.Errorf("failed to purchase %s: %w", id, err)
	}
	return Reloaded(m.Load(ctx))
}
