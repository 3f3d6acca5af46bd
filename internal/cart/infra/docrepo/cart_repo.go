package docrepo

import (
	"context"
	"errors"

	"github.com/dwikikusuma/bakery-shop/internal/cart/app"
	"github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

const CartCollection = "carts"

// CartRepo keeps one document per user, keyed by user id.
type CartRepo struct {
	c *docstore.Collection[domain.Cart]
}

var _ app.CartRepo = (*CartRepo)(nil)

func NewCartRepo(store docstore.Store) *CartRepo {
	return &CartRepo{c: docstore.NewCollection(store, CartCollection, func(c domain.Cart) string { return c.UserID })}
}

func (r *CartRepo) Get(ctx context.Context, userID string) (domain.Cart, error) {
	cart, err := r.c.Get(ctx, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.Cart{}, app.ErrNotFound
	}
	return cart, err
}

func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) error {
	return r.c.Put(ctx, cart)
}

func (r *CartRepo) Delete(ctx context.Context, userID string) error {
	return r.c.Delete(ctx, userID)
}
