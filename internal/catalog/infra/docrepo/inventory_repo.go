package docrepo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dwikikusuma/bakery-shop/internal/catalog/app"
	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

const (
	InventoryCollection = "inventory"
	RecipeCollection    = "productRecipes"
)

type InventoryRepo struct {
	c   *docstore.Collection[domain.InventoryItem]
	log *slog.Logger
}

var _ app.InventoryRepo = (*InventoryRepo)(nil)

func NewInventoryRepo(store docstore.Store, log *slog.Logger) *InventoryRepo {
	return &InventoryRepo{
		c:   docstore.NewCollection(store, InventoryCollection, func(it domain.InventoryItem) string { return it.ID }),
		log: logger.Component(log, "catalog.inventory_repo"),
	}
}

func (r *InventoryRepo) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return r.c.List(ctx)
}

func (r *InventoryRepo) Get(ctx context.Context, id string) (domain.InventoryItem, error) {
	it, err := r.c.Get(ctx, id)
	return it, mapErr(err)
}

func (r *InventoryRepo) Upsert(ctx context.Context, item domain.InventoryItem) error {
	return r.c.Put(ctx, item)
}

func (r *InventoryRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *InventoryRepo) Adjust(ctx context.Context, id string, fn func(domain.InventoryItem) domain.InventoryItem) (domain.InventoryItem, error) {
	it, err := r.c.Update(ctx, id, func(cur domain.InventoryItem, exists bool) (domain.InventoryItem, error) {
		if !exists {
			return cur, app.ErrNotFound
		}
		return fn(cur), nil
	})
	return it, mapErr(err)
}

func (r *InventoryRepo) Watch(ctx context.Context, fn func([]domain.InventoryItem)) (func(), error) {
	return r.c.Watch(ctx, r.log, fn)
}

func mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return app.ErrNotFound
	}
	return err
}
