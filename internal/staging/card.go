// Package staging lets a shopper adjust a candidate quantity on a product card
// before committing it to the shared cart.
package staging

import (
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/shopspring/decimal"
)

// Card is the per-product staging state machine. It is not safe for concurrent use.
type Card struct {
	product      domain.Product
	cartQuantity int
	staged       int
}

func NewCard(product domain.Product, cartQuantity int) *Card {
	c := &Card{product: product}
	c.SyncCartQuantity(cartQuantity)
	return c
}

// SyncCartQuantity records a new committed quantity and re-stages from it.
func (c *Card) SyncCartQuantity(quantity int) {
	c.cartQuantity = quantity
	c.staged = max(quantity, 1)
}

func (c *Card) ProductID() string {
	return c.product.ID
}

func (c *Card) Staged() int {
	return c.staged
}

func (c *Card) CartQuantity() int {
	return c.cartQuantity
}

func (c *Card) StockLevel() int {
	return c.product.Quantity
}

func (c *Card) CanIncrement() bool {
	return c.inRange(c.staged + 1)
}

func (c *Card) CanDecrement() bool {
	return c.inRange(c.staged - 1)
}

// Increment stages one more unit. It reports false and leaves the card
// unchanged when the result would leave [1, stock].
func (c *Card) Increment() bool {
	return c.step(1)
}

func (c *Card) Decrement() bool {
	return c.step(-1)
}

// CanCommit is false when there is nothing to commit or nothing in stock.
func (c *Card) CanCommit() bool {
	return c.StockLevel() != 0 && c.staged != c.cartQuantity && c.inRange(c.staged)
}

// CommitQuantity returns the quantity to hand to the cart and whether a commit is allowed.
func (c *Card) CommitQuantity() (int, bool) {
	return c.staged, c.CanCommit()
}

func (c *Card) CanRemove() bool {
	return c.cartQuantity > 0
}

func (c *Card) View() CardView {
	return CardView{
		ProductID:        c.product.ID,
		Name:             c.product.Name,
		Price:            c.product.Price,
		Staged:           c.staged,
		CartQuantity:     c.cartQuantity,
		StockLevel:       c.StockLevel(),
		Subtotal:         domain.Subtotal(c.product.Price, c.staged),
		CanIncrement:     c.CanIncrement(),
		CanDecrement:     c.CanDecrement(),
		CanCommit:        c.CanCommit(),
		CanRemove:        c.CanRemove(),
		LowStock:         c.product.LowStock(),
		OutOfStock:       c.product.OutOfStock(),
		MaxStockReached:  c.staged >= c.StockLevel(),
		PendingReduction: c.cartQuantity > 0 && c.staged < c.cartQuantity,
		ActionLabel:      c.actionLabel(),
	}
}

func (c *Card) step(delta int) bool {
	next := c.staged + delta
	if !c.inRange(next) {
		return false
	}

	c.staged = next
	return true
}

func (c *Card) inRange(q int) bool {
	return q >= 1 && q <= c.StockLevel()
}

func (c *Card) actionLabel() string {
	if c.cartQuantity == 0 {
		return fmt.Sprintf("Add %d to Cart", c.staged)
	}
	return fmt.Sprintf("Update Cart to %d", c.staged)
}

type CardView struct {
	ProductID        string          `json:"productId"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Staged           int             `json:"stagedQuantity"`
	CartQuantity     int             `json:"cartQuantity"`
	StockLevel       int             `json:"stockLevel"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	CanIncrement     bool            `json:"canIncrement"`
	CanDecrement     bool            `json:"canDecrement"`
	CanCommit        bool            `json:"canCommit"`
	CanRemove        bool            `json:"canRemove"`
	LowStock         bool            `json:"lowStock"`
	OutOfStock       bool            `json:"outOfStock"`
	MaxStockReached  bool            `json:"maxStockReached"`
	PendingReduction bool            `json:"pendingReduction"`
	ActionLabel      string          `json:"actionLabel"`
}
