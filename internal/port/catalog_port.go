package port

import (
	"context"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (domain.Product, error)
	Prepend(ctx context.Context, product domain.Product) error
}

// ProductAdder is the catalog mutation entry point handed to presentation code.
type ProductAdder interface {
	AddProduct(ctx context.Context, product domain.Product) error
}
