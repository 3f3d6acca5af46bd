package docrepo

import (
	"context"
	"errors"
	"slices"

	"github.com/dwikikusuma/bakery-shop/internal/order/app"
	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

const OrderCollection = "orders"

type OrderRepo struct {
	c *docstore.Collection[domain.Order]
}

var _ app.OrderRepo = (*OrderRepo)(nil)

func NewOrderRepo(store docstore.Store) *OrderRepo {
	return &OrderRepo{c: docstore.NewCollection(store, OrderCollection, func(o domain.Order) string { return o.ID })}
}

func (r *OrderRepo) Create(ctx context.Context, o domain.Order) error {
	return r.c.Put(ctx, o)
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	o, err := r.c.Get(ctx, id)
	return o, mapErr(err)
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	orders, err := r.c.List(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(orders, func(a, b domain.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return orders, nil
}

func (r *OrderRepo) Update(ctx context.Context, id string, fn func(domain.Order) (domain.Order, error)) (domain.Order, error) {
	o, err := r.c.Update(ctx, id, func(cur domain.Order, exists bool) (domain.Order, error) {
		if !exists {
			return cur, app.ErrNotFound
		}
		return fn(cur)
	})
	return o, mapErr(err)
}

func mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return app.ErrNotFound
	}
	return err
}
