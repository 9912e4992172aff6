package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/port"
)

type catalogRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewCatalog(seed []domain.Product) port.CatalogRepository {
	return &catalogRepository{
		products: slices.Clone(seed),
	}
}

func (r *catalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	return withRead(ctx, &r.mu, func() ([]domain.Product, error) {
		return slices.Clone(r.products), nil
	})
}

func (r *catalogRepository) Get(ctx context.Context, productID string) (domain.Product, error) {
	if productID == "" {
		return domain.Product{}, fmt.Errorf("productID is empty")
	}

	return withRead(ctx, &r.mu, func() (domain.Product, error) {
		i := slices.IndexFunc(r.products, func(p domain.Product) bool {
			return p.ID == productID
		})
		if i < 0 {
			return domain.Product{}, fmt.Errorf("product[%s]: %w", productID, domain.ErrProductNotFound)
		}
		return r.products[i], nil
	})
}

// Prepend puts the product in front of the catalog. No validation is performed.
func (r *catalogRepository) Prepend(ctx context.Context, product domain.Product) error {
	_, err := withWrite(ctx, &r.mu, func() (struct{}, error) {
		r.products = slices.Insert(r.products, 0, product)
		return struct{}{}, nil
	})

	return err
}
