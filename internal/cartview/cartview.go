// Package cartview renders the committed cart as lines with bounded quantity
// controls and a running total. Unlike product cards there is no staging:
// every control writes the new absolute quantity straight to the cart.
package cartview

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/nikolayk812/storefront-demo/internal/store"
)

type Line struct {
	domain.CartLineItem

	CanIncrement bool   `json:"canIncrement"`
	CanDecrement bool   `json:"canDecrement"`
	StockHint    string `json:"stockHint,omitempty"`
}

type Page struct {
	Lines           []Line        `json:"lines"`
	Totals          domain.Totals `json:"totals"`
	OverallTotal    string        `json:"overallTotalDisplay"`
	CheckoutEnabled bool          `json:"checkoutEnabled"`
	CheckoutLabel   string        `json:"checkoutLabel"`
}

func NewLine(item domain.CartLineItem) Line {
	line := Line{
		CartLineItem: item,
		CanIncrement: item.CartQuantity < item.StockLevel,
		CanDecrement: item.CartQuantity > 0,
	}

	if item.StockLevel < domain.LowStockThreshold {
		line.StockHint = fmt.Sprintf("Only %d left in stock!", item.StockLevel)
	}

	return line
}

func NewPage(snap store.Snapshot) Page {
	lines := make([]Line, 0, len(snap.LineItems))
	for _, item := range snap.LineItems {
		lines = append(lines, NewLine(item))
	}

	return Page{
		Lines:           lines,
		Totals:          snap.Totals,
		OverallTotal:    snap.OverallTotal().String(),
		CheckoutEnabled: snap.Totals.TotalCartItems > 0,
		CheckoutLabel:   CheckoutLabel(snap.Totals.TotalCartItems),
	}
}

func CheckoutLabel(totalItems int) string {
	if totalItems > 0 {
		return fmt.Sprintf("Checkout (%d Items)", totalItems)
	}
	return "Cart Empty"
}

type Controls struct {
	changer port.CartLineChanger
}

func NewControls(changer port.CartLineChanger) *Controls {
	return &Controls{
		changer: changer,
	}
}

func (c *Controls) Increment(ctx context.Context, productID string) (bool, error) {
	return c.Change(ctx, productID, 1)
}

func (c *Controls) Decrement(ctx context.Context, productID string) (bool, error) {
	return c.Change(ctx, productID, -1)
}

// Change moves a line's quantity by delta. Requests outside [0, stock] are
// ignored and reported as false. Reaching zero removes the line.
func (c *Controls) Change(ctx context.Context, productID string, delta int) (bool, error) {
	applied, err := c.changer.ChangeCart(ctx, productID, delta)
	if err != nil {
		return false, fmt.Errorf("changer.ChangeCart: %w", err)
	}
	return applied, nil
}

func (c *Controls) Remove(ctx context.Context, productID string) error {
	if err := c.changer.UpdateCart(ctx, productID, 0); err != nil {
		return fmt.Errorf("changer.UpdateCart: %w", err)
	}
	return nil
}
