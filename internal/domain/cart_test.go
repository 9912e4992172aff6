package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
	return x.Equal(y)
})

func TestComputeLineItems(t *testing.T) {
	catalog := []domain.Product{
		{ID: "A", Name: "Lamp", Price: decimal.RequireFromString("10"), Quantity: 3},
		{ID: "B", Name: "Desk", Price: decimal.RequireFromString("99.50"), Quantity: 1},
		{ID: "C", Name: "Mug", Price: decimal.RequireFromString("4.25"), Quantity: 12},
	}

	tests := []struct {
		name string
		cart domain.Cart
		want []domain.CartLineItem
	}{
		{
			name: "empty cart: no line items",
			cart: domain.Cart{},
			want: []domain.CartLineItem{},
		},
		{
			name: "line items follow catalog order",
			cart: domain.Cart{"C": 2, "A": 1},
			want: []domain.CartLineItem{
				{Product: catalog[0], StockLevel: 3, CartQuantity: 1, Subtotal: decimal.RequireFromString("10")},
				{Product: catalog[2], StockLevel: 12, CartQuantity: 2, Subtotal: decimal.RequireFromString("8.5")},
			},
		},
		{
			name: "unknown product id is not resolved",
			cart: domain.Cart{"Z": 4, "B": 1},
			want: []domain.CartLineItem{
				{Product: catalog[1], StockLevel: 1, CartQuantity: 1, Subtotal: decimal.RequireFromString("99.5")},
			},
		},
		{
			name: "non-positive quantity is skipped",
			cart: domain.Cart{"A": -1},
			want: []domain.CartLineItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeLineItems(catalog, tt.cart)
			assert.Empty(t, cmp.Diff(tt.want, got, decimalComparer))
		})
	}
}

func TestComputeTotals(t *testing.T) {
	catalog := []domain.Product{
		{ID: "A", Price: decimal.RequireFromString("10"), Quantity: 3},
		{ID: "B", Price: decimal.RequireFromString("2.35"), Quantity: 8},
	}
	cart := domain.Cart{"A": 2, "B": 3}

	totals := domain.ComputeTotals(domain.ComputeLineItems(catalog, cart), cart)

	assert.True(t, decimal.RequireFromString("27.05").Equal(totals.OverallTotal), totals.OverallTotal.String())
	assert.Equal(t, 5, totals.TotalCartItems)
}

func TestComputeTotals_CountsEntriesWithoutProduct(t *testing.T) {
	cart := domain.Cart{"gone": 2}

	totals := domain.ComputeTotals(domain.ComputeLineItems(nil, cart), cart)

	assert.True(t, totals.OverallTotal.IsZero())
	assert.Equal(t, 2, totals.TotalCartItems)
}

func TestCart_Clone(t *testing.T) {
	cart := domain.Cart{"A": 1}

	clone := cart.Clone()
	clone["A"] = 7

	assert.Equal(t, 1, cart.Quantity("A"))
	assert.Equal(t, 0, cart.Quantity("missing"))
}

func TestParseCategory(t *testing.T) {
	c, err := domain.ParseCategory("Home & Kitchen")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryHomeKitchen, c)

	_, err = domain.ParseCategory("Toys")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
}

func TestProduct_StockFlags(t *testing.T) {
	tests := []struct {
		stock            int
		wantLow, wantOut bool
	}{
		{stock: 0, wantOut: true},
		{stock: 1, wantLow: true},
		{stock: 4, wantLow: true},
		{stock: 5},
	}

	for _, tt := range tests {
		p := domain.Product{Quantity: tt.stock}
		assert.Equal(t, tt.wantLow, p.LowStock(), "stock %d", tt.stock)
		assert.Equal(t, tt.wantOut, p.OutOfStock(), "stock %d", tt.stock)
	}
}
