package domain

import (
	"maps"

	"github.com/shopspring/decimal"
)

// Cart maps a product ID to its committed quantity. A product that is not in
// the cart has no entry; an entry never holds a quantity of zero.
type Cart map[string]int

func (c Cart) Quantity(productID string) int {
	return c[productID]
}

func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	maps.Copy(out, c)
	return out
}

// CartLineItem is a cart entry resolved against the catalog.
type CartLineItem struct {
	Product

	StockLevel   int             `json:"stockLevel"`
	CartQuantity int             `json:"cartQuantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type Totals struct {
	OverallTotal   decimal.Decimal `json:"overallTotal"`
	TotalCartItems int             `json:"totalCartItems"`
}

func Subtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// ComputeLineItems keeps catalog order and skips products without a positive cart quantity.
func ComputeLineItems(catalog []Product, cart Cart) []CartLineItem {
	items := make([]CartLineItem, 0, len(cart))

	for _, p := range catalog {
		qty := cart[p.ID]
		if qty <= 0 {
			continue
		}

		items = append(items, CartLineItem{
			Product:      p,
			StockLevel:   p.Quantity,
			CartQuantity: qty,
			Subtotal:     Subtotal(p.Price, qty),
		})
	}

	return items
}

// ComputeTotals sums line subtotals and counts items over every cart entry.
func ComputeTotals(items []CartLineItem, cart Cart) Totals {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	count := 0
	for _, qty := range cart {
		count += qty
	}

	return Totals{
		OverallTotal:   total,
		TotalCartItems: count,
	}
}
