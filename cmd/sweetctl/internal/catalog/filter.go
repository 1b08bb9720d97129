// Package catalog derives the storefront view of the sweets collection.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-bexpr"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

// LowStockThreshold marks items shown as "Limited".
const LowStockThreshold = 5

// fullStockBar is the quantity at which the stock bar is full.
const fullStockBar = 50

// Filter selects a subset of the catalog. The zero Filter matches everything.
type Filter struct {
	// Search is matched case-insensitively against name or category.
	Search string
	// Category must equal the item's category exactly. Empty means any.
	Category string
	// Where is a go-bexpr expression over name, category, price and quantity.
	Where string
}

const evaluatorCacheSize = 64

// evaluators caches compiled Where expressions; the shell re-applies the same
// filter after every reload.
var evaluators = func() *lru.Cache[string, *bexpr.Evaluator] {
	cache, err := lru.New[string, *bexpr.Evaluator](evaluatorCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}()

func evaluatorFor(where string) (*bexpr.Evaluator, error) {
	if e, ok := evaluators.Get(where); ok {
		return e, nil
	}
	e, err := bexpr.CreateEvaluator(where)
	if err != nil {
		return nil, err
	}
	evaluators.Add(where, e)
	return e, nil
}

// Compiled is a Filter ready to evaluate.
type Compiled struct {
	search    string
	category  string
	evaluator *bexpr.Evaluator
}

// Compile validates the Where expression.
func (f Filter) Compile() (*Compiled, error) {
	c := &Compiled{
		search:   strings.ToLower(f.Search),
		category: f.Category,
	}
	if where := strings.TrimSpace(f.Where); where != "" {
		evaluator, err := evaluatorFor(where)
		if err != nil {
			return nil, &sdk.ValidationError{Field: "where", Message: fmt.Sprintf("invalid filter expression: %v", err)}
		}
		c.evaluator = evaluator
	}
	return c, nil
}

// Matches reports whether sweet passes every part of the filter.
func (c *Compiled) Matches(sweet sdk.Sweet) bool {
	if c.search != "" &&
		!strings.Contains(strings.ToLower(sweet.Name), c.search) &&
		!strings.Contains(strings.ToLower(sweet.Category), c.search) {
		return false
	}
	if c.category != "" && sweet.Category != c.category {
		return false
	}
	if c.evaluator != nil {
		ok, err := c.evaluator.Evaluate(fields(sweet))
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Apply returns the matching sweets in their original order.
func (c *Compiled) Apply(sweets []sdk.Sweet) []sdk.Sweet {
	out := make([]sdk.Sweet, 0, len(sweets))
	for _, s := range sweets {
		if c.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// Apply compiles f and filters sweets with it.
func Apply(f Filter, sweets []sdk.Sweet) ([]sdk.Sweet, error) {
	compiled, err := f.Compile()
	if err != nil {
		return nil, err
	}
	return compiled.Apply(sweets), nil
}

func fields(s sdk.Sweet) map[string]any {
	return map[string]any{
		"id":       s.ID,
		"name":     s.Name,
		"category": s.Category,
		"price":    s.Price,
		"quantity": s.Quantity,
	}
}

// Categories lists the distinct categories in first-appearance order.
func Categories(sweets []sdk.Sweet) []string {
	seen := make(map[string]struct{}, len(sweets))
	var out []string
	for _, s := range sweets {
		if s.Category == "" {
			continue
		}
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

// Summary is the "Showing N of M" line.
func Summary(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d sweets", shown, total)
}

// StockLevel classifies an item's quantity.
type StockLevel string

const (
	StockOut     StockLevel = "Out of stock"
	StockLimited StockLevel = "Limited"
	StockIn      StockLevel = "In stock"
)

// LevelOf returns the stock badge for quantity.
func LevelOf(quantity int) StockLevel {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < LowStockThreshold:
		return StockLimited
	default:
		return StockIn
	}
}

// StockPercent fills the stock bar: quantity relative to 50 units, capped at 100.
func StockPercent(quantity int) int {
	if quantity <= 0 {
		return 0
	}
	return int(math.Min(100, float64(quantity)/fullStockBar*100))
}
