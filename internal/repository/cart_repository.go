package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

type cartRepository struct {
	mu    sync.RWMutex
	items domain.Cart
}

func NewCart() port.CartRepository {
	return &cartRepository{
		items: domain.Cart{},
	}
}

// NewCartFrom starts from a copy of an existing cart, dropping non-positive entries.
func NewCartFrom(cart domain.Cart) port.CartRepository {
	items := domain.Cart{}
	for id, qty := range cart {
		if qty > 0 {
			items[id] = qty
		}
	}

	return &cartRepository{
		items: items,
	}
}

func (r *cartRepository) GetCart(ctx context.Context) (domain.Cart, error) {
	return withRead(ctx, &r.mu, func() (domain.Cart, error) {
		return r.items.Clone(), nil
	})
}

// SetQuantity inserts or overwrites an entry. A zero quantity removes it.
func (r *cartRepository) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if productID == "" {
		return fmt.Errorf("productID is empty")
	}

	_, err := withWrite(ctx, &r.mu, func() (struct{}, error) {
		if quantity == 0 {
			delete(r.items, productID)
		} else {
			r.items[productID] = quantity
		}
		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteItem(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, fmt.Errorf("productID is empty")
	}

	return withWrite(ctx, &r.mu, func() (bool, error) {
		_, ok := r.items[productID]
		delete(r.items, productID)
		return ok, nil
	})
}
