package docrepo

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/bakery-shop/internal/catalog/app"
	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

type RecipeRepo struct {
	c   *docstore.Collection[domain.ProductRecipe]
	log *slog.Logger
}

var _ app.RecipeRepo = (*RecipeRepo)(nil)

func NewRecipeRepo(store docstore.Store, log *slog.Logger) *RecipeRepo {
	return &RecipeRepo{
		c:   docstore.NewCollection(store, RecipeCollection, func(r domain.ProductRecipe) string { return r.ID }),
		log: logger.Component(log, "catalog.recipe_repo"),
	}
}

func (r *RecipeRepo) List(ctx context.Context) ([]domain.ProductRecipe, error) {
	return r.c.List(ctx)
}

func (r *RecipeRepo) Get(ctx context.Context, id string) (domain.ProductRecipe, error) {
	rec, err := r.c.Get(ctx, id)
	return rec, mapErr(err)
}

func (r *RecipeRepo) Upsert(ctx context.Context, rec domain.ProductRecipe) error {
	return r.c.Put(ctx, rec)
}

func (r *RecipeRepo) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, id)
}

func (r *RecipeRepo) Watch(ctx context.Context, fn func([]domain.ProductRecipe)) (func(), error) {
	return r.c.Watch(ctx, r.log, fn)
}
