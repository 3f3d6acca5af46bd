package app

import (
	"context"

	"github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

type CartRepo interface {
	// Get returns ErrNotFound when the user has no stored cart.
	Get(ctx context.Context, userID string) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
	Delete(ctx context.Context, userID string) error
}

// Catalog resolves components and products to priced catalog entries.
type Catalog interface {
	Snapshot() *catalog.Snapshot
}
