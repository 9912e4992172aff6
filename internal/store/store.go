// Package store owns the catalog and the cart and keeps the derived cart
// views (line items and totals) consistent with the latest mutation.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// Bus topics published after a mutation has been applied.
const (
	// TopicCartChanged handlers receive (productID string, quantity int).
	// Published only when the committed quantity actually changed.
	TopicCartChanged = "cart:changed"
	// TopicCatalogChanged handlers receive (size int).
	TopicCatalogChanged = "catalog:changed"
)

// Snapshot is a read-consistent view of the store.
type Snapshot struct {
	Catalog   []domain.Product
	Cart      domain.Cart
	LineItems []domain.CartLineItem
	Totals    domain.Totals
	Currency  currency.Unit
}

func (s Snapshot) OverallTotal() domain.Money {
	return domain.NewMoney(s.Totals.OverallTotal, s.Currency)
}

type Store struct {
	mu      sync.RWMutex
	catalog port.CatalogRepository
	cart    port.CartRepository
	view    Snapshot

	bus    EventBus.Bus
	logger *zap.Logger
	unit   currency.Unit
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func WithBus(bus EventBus.Bus) Option {
	return func(s *Store) {
		s.bus = bus
	}
}

func WithCurrency(unit currency.Unit) Option {
	return func(s *Store) {
		s.unit = unit
	}
}

func New(ctx context.Context, catalog port.CatalogRepository, cart port.CartRepository, opts ...Option) (*Store, error) {
	s := &Store{
		catalog: catalog,
		cart:    cart,
		bus:     EventBus.New(),
		logger:  zap.NewNop(),
		unit:    currency.USD,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.refresh(ctx); err != nil {
		return nil, fmt.Errorf("s.refresh: %w", err)
	}

	return s, nil
}

func (s *Store) Bus() EventBus.Bus {
	return s.bus
}

func (s *Store) Currency() currency.Unit {
	return s.unit
}

// AddProduct prepends the product to the catalog as given.
func (s *Store) AddProduct(ctx context.Context, product domain.Product) error {
	size, err := s.mutate(ctx, func() error {
		if err := s.catalog.Prepend(ctx, product); err != nil {
			return fmt.Errorf("catalog.Prepend: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("product added",
		zap.String("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int("catalog_size", size))

	s.bus.Publish(TopicCatalogChanged, size)

	return nil
}

// UpdateCart sets the committed quantity for a product; zero removes the entry.
// The quantity is not checked against stock or sign, keeping those bounds with the caller.
func (s *Store) UpdateCart(ctx context.Context, productID string, newQuantity int) error {
	var previous int

	_, err := s.mutate(ctx, func() error {
		previous = s.view.Cart.Quantity(productID)
		return s.writeQuantityLocked(ctx, productID, newQuantity)
	})
	if err != nil {
		return err
	}

	s.cartUpdated(productID, previous, newQuantity)

	return nil
}

// ChangeCart moves the quantity of an existing cart line by delta. The read and
// the write happen under one lock, so concurrent steps are not lost. A result
// outside [0, stock] is ignored and reported as false.
func (s *Store) ChangeCart(ctx context.Context, productID string, delta int) (bool, error) {
	var (
		previous, quantity int
		applied            bool
	)

	_, err := s.mutate(ctx, func() error {
		i := slices.IndexFunc(s.view.LineItems, func(item domain.CartLineItem) bool {
			return item.ID == productID
		})
		if i < 0 {
			return fmt.Errorf("cart line[%s]: %w", productID, domain.ErrProductNotFound)
		}
		line := s.view.LineItems[i]

		previous = line.CartQuantity
		quantity = previous + delta
		if quantity < 0 || quantity > line.StockLevel {
			return nil
		}

		applied = true
		return s.writeQuantityLocked(ctx, productID, quantity)
	})
	if err != nil {
		return false, err
	}

	if applied {
		s.cartUpdated(productID, previous, quantity)
	}

	return applied, nil
}

func (s *Store) writeQuantityLocked(ctx context.Context, productID string, quantity int) error {
	if quantity == 0 {
		if _, err := s.cart.DeleteItem(ctx, productID); err != nil {
			return fmt.Errorf("cart.DeleteItem: %w", err)
		}
		return nil
	}

	if err := s.cart.SetQuantity(ctx, productID, quantity); err != nil {
		return fmt.Errorf("cart.SetQuantity: %w", err)
	}
	return nil
}

func (s *Store) cartUpdated(productID string, previous, quantity int) {
	s.logger.Debug("cart updated",
		zap.String("product_id", productID),
		zap.Int("previous", previous),
		zap.Int("quantity", quantity))

	if previous != quantity {
		s.bus.Publish(TopicCartChanged, productID, quantity)
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Catalog:   slices.Clone(s.view.Catalog),
		Cart:      s.view.Cart.Clone(),
		LineItems: slices.Clone(s.view.LineItems),
		Totals:    s.view.Totals,
		Currency:  s.view.Currency,
	}
}

func (s *Store) Catalog() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.view.Catalog)
}

func (s *Store) Product(productID string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.view.Catalog, func(p domain.Product) bool {
		return p.ID == productID
	})
	if i < 0 {
		return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
	}

	return s.view.Catalog[i], nil
}

func (s *Store) Cart() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view.Cart.Clone()
}

func (s *Store) CartQuantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view.Cart.Quantity(productID)
}

func (s *Store) CartLineItems() []domain.CartLineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.view.LineItems)
}

func (s *Store) OverallTotal() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view.Totals.OverallTotal
}

func (s *Store) TotalCartItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view.Totals.TotalCartItems
}

// mutate applies fn and recomputes the derived view before releasing the lock.
// It returns the catalog size after the mutation.
func (s *Store) mutate(ctx context.Context, fn func() error) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return 0, err
	}

	if err := s.refreshLocked(ctx); err != nil {
		return 0, fmt.Errorf("s.refreshLocked: %w", err)
	}

	return len(s.view.Catalog), nil
}

func (s *Store) refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refreshLocked(ctx)
}

func (s *Store) refreshLocked(ctx context.Context) error {
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog.List: %w", err)
	}

	cart, err := s.cart.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("cart.GetCart: %w", err)
	}

	items := domain.ComputeLineItems(catalog, cart)

	s.view = Snapshot{
		Catalog:   catalog,
		Cart:      cart,
		LineItems: items,
		Totals:    domain.ComputeTotals(items, cart),
		Currency:  s.unit,
	}

	return nil
}
