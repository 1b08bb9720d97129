package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakshighanekar/sweetshelf/pkg/sdk"
)

func names(sweets []sdk.Sweet) []string {
	out := make([]string, 0, len(sweets))
	for _, s := range sweets {
		out = append(out, s.Name)
	}
	return out
}

var sample = []sdk.Sweet{
	{ID: "1", Name: "Gulab Jamun", Category: "Indian", Price: 2.5, Quantity: 20},
	{ID: "2", Name: "Choco Bar", Category: "Chocolate", Price: 1.25, Quantity: 0},
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter matches all", Filter{}, []string{"Gulab Jamun", "Choco Bar"}},
		{"search by name", Filter{Search: "choco"}, []string{"Choco Bar"}},
		{"search is case-insensitive", Filter{Search: "GULAB"}, []string{"Gulab Jamun"}},
		{"search matches category", Filter{Search: "indi"}, []string{"Gulab Jamun"}},
		{"category with empty search", Filter{Category: "Indian"}, []string{"Gulab Jamun"}},
		{"category is exact", Filter{Category: "indian"}, []string{}},
		{"search and category combine", Filter{Search: "choco", Category: "Indian"}, []string{}},
		{"no match", Filter{Search: "ladoo"}, []string{}},
		{"where on price", Filter{Where: "price < 2"}, []string{"Choco Bar"}},
		{"where on quantity", Filter{Where: "quantity > 0"}, []string{"Gulab Jamun"}},
		{"where and search", Filter{Search: "a", Where: `category == "Chocolate"`}, []string{"Choco Bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.filter, sample)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestApply_InvalidWhere(t *testing.T) {
	_, err := Apply(Filter{Where: "price <"}, sample)
	var validationErr *sdk.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "where", validationErr.Field)
}

func TestApply_PreservesInput(t *testing.T) {
	input := append([]sdk.Sweet(nil), sample...)
	_, err := Apply(Filter{Search: "choco"}, input)
	require.NoError(t, err)
	assert.Equal(t, sample, input)
}

func TestCategories(t *testing.T) {
	sweets := []sdk.Sweet{
		{Category: "Indian"}, {Category: "Chocolate"}, {Category: "Indian"}, {Category: ""}, {Category: "Candy"},
	}
	assert.Equal(t, []string{"Indian", "Chocolate", "Candy"}, Categories(sweets))
	assert.Empty(t, Categories(nil))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Showing 1 of 2 sweets", Summary(1, 2))
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, StockOut, LevelOf(0))
	assert.Equal(t, StockOut, LevelOf(-1))
	assert.Equal(t, StockLimited, LevelOf(1))
	assert.Equal(t, StockLimited, LevelOf(4))
	assert.Equal(t, StockIn, LevelOf(5))
}

func TestStockPercent(t *testing.T) {
	assert.Equal(t, 0, StockPercent(0))
	assert.Equal(t, 50, StockPercent(25))
	assert.Equal(t, 100, StockPercent(50))
	assert.Equal(t, 100, StockPercent(500))
}

func TestCompile_ReusesEvaluator(t *testing.T) {
	f := Filter{Where: "quantity > 5"}
	first, err := f.Compile()
	require.NoError(t, err)
	second, err := f.Compile()
	require.NoError(t, err)

	assert.Same(t, first.evaluator, second.evaluator)
	assert.Equal(t, []string{"Gulab Jamun"}, names(second.Apply(sample)))
}
