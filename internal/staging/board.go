package staging

import (
	"context"
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"go.uber.org/zap"
)

// Backend is the part of the state container a board reads from and commits to.
type Backend interface {
	port.CartUpdater

	Product(productID string) (domain.Product, error)
	CartQuantity(productID string) int
}

// Board holds one Card per product and re-stages a card whenever the
// committed quantity of its product changes.
type Board struct {
	mu      sync.Mutex
	cards   map[string]*Card
	backend Backend
	bus     EventBus.Bus
	logger  *zap.Logger
}

func NewBoard(backend Backend, bus EventBus.Bus, logger *zap.Logger) (*Board, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	b := &Board{
		cards:   make(map[string]*Card),
		backend: backend,
		bus:     bus,
		logger:  logger,
	}

	if err := attach(bus, b); err != nil {
		return nil, fmt.Errorf("attach: %w", err)
	}

	return b, nil
}

func (b *Board) Close() error {
	if err := detach(b.bus, b); err != nil {
		return fmt.Errorf("detach: %w", err)
	}
	return nil
}

func (b *Board) View(productID string) (CardView, error) {
	return b.withCard(productID, func(c *Card) {})
}

// Increment and Decrement report the card state; rejected steps leave it unchanged.
func (b *Board) Increment(productID string) (CardView, error) {
	return b.withCard(productID, func(c *Card) {
		c.Increment()
	})
}

func (b *Board) Decrement(productID string) (CardView, error) {
	return b.withCard(productID, func(c *Card) {
		c.Decrement()
	})
}

// Commit moves the committed cart quantity to the staged one. It is a no-op
// when the card does not allow a commit.
func (b *Board) Commit(ctx context.Context, productID string) (CardView, error) {
	var (
		qty int
		ok  bool
	)

	if _, err := b.withCard(productID, func(c *Card) {
		qty, ok = c.CommitQuantity()
	}); err != nil {
		return CardView{}, err
	}

	if ok {
		if err := b.backend.UpdateCart(ctx, productID, qty); err != nil {
			return CardView{}, fmt.Errorf("backend.UpdateCart: %w", err)
		}
		b.logger.Debug("staged quantity committed", zap.String("product_id", productID), zap.Int("quantity", qty))
	}

	return b.View(productID)
}

// Remove clears the product from the cart. It is a no-op when the product is not in the cart.
func (b *Board) Remove(ctx context.Context, productID string) (CardView, error) {
	var ok bool

	if _, err := b.withCard(productID, func(c *Card) {
		ok = c.CanRemove()
	}); err != nil {
		return CardView{}, err
	}

	if ok {
		if err := b.backend.UpdateCart(ctx, productID, 0); err != nil {
			return CardView{}, fmt.Errorf("backend.UpdateCart: %w", err)
		}
		b.logger.Debug("product removed from cart", zap.String("product_id", productID))
	}

	return b.View(productID)
}

func (b *Board) withCard(productID string, fn func(c *Card)) (CardView, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	card, ok := b.cards[productID]
	if !ok {
		product, err := b.backend.Product(productID)
		if err != nil {
			return CardView{}, fmt.Errorf("backend.Product: %w", err)
		}

		card = NewCard(product, b.backend.CartQuantity(productID))
		b.cards[productID] = card
	}

	fn(card)

	return card.View(), nil
}

// onCartChanged re-reads the committed quantity instead of trusting the event
// payload: events from concurrent commits may arrive out of order.
func (b *Board) onCartChanged(productID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if card, ok := b.cards[productID]; ok {
		card.SyncCartQuantity(b.backend.CartQuantity(productID))
	}
}
