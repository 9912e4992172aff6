package port

import (
	"context"

	"github.com/nikolayk812/storefront-demo/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context) (domain.Cart, error)
	SetQuantity(ctx context.Context, productID string, quantity int) error
	DeleteItem(ctx context.Context, productID string) (bool, error)
}

// CartUpdater is the single cart mutation entry point handed to presentation code.
type CartUpdater interface {
	UpdateCart(ctx context.Context, productID string, newQuantity int) error
}

// CartLineChanger moves a cart line by a delta, bounded by the product's stock,
// as one read-modify-write.
type CartLineChanger interface {
	CartUpdater

	ChangeCart(ctx context.Context, productID string, delta int) (bool, error)
}
