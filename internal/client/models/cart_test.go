package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCart_PricesResolvableLines(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 7, Quantity: 1},
	}
	products := []Product{
		{ID: 1, Title: "Mug", Price: 10},
		{ID: 7, Title: "Kettle", Price: 35.5},
	}

	lines := MergeCart(items, products)
	require.Len(t, lines, 2)

	assert.Equal(t, "Mug", lines[0].Title)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.InDelta(t, 20.0, lines[0].TotalPrice, 1e-9)
	assert.InDelta(t, 35.5, lines[1].TotalPrice, 1e-9)
	assert.InDelta(t, 55.5, CartTotal(lines), 1e-9)
}

func TestMergeCart_MissingProductStaysRenderable(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, Quantity: 2},
		{ProductID: 99, Quantity: 3}, // deleted from catalog
	}
	products := []Product{{ID: 1, Title: "Mug", Price: 10}}

	lines := MergeCart(items, products)
	require.Len(t, lines, 2)

	missing := lines[1]
	assert.True(t, missing.Missing)
	assert.Equal(t, 99, missing.ID)
	assert.Equal(t, 3, missing.Quantity)
	assert.Zero(t, missing.TotalPrice)

	// unresolvable lines contribute nothing
	assert.InDelta(t, 20.0, CartTotal(lines), 1e-9)
}

func TestMergeCart_EmptyCart(t *testing.T) {
	assert.Empty(t, MergeCart(nil, nil))
	assert.Zero(t, CartTotal(nil))
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name    string
		current int
		delta   int
		want    int
		ok      bool
	}{
		{"increment mid-range", 3, +1, 4, true},
		{"decrement mid-range", 3, -1, 2, true},
		{"decrement at floor is a no-op", 1, -1, 1, false},
		{"increment at ceiling is a no-op", 9, +1, 9, false},
		{"increment to ceiling", 8, +1, 9, true},
		{"decrement to floor", 2, -1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClampQuantity(tt.current, tt.delta)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
