package app

import (
	"context"

	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

type InventoryRepo interface {
	List(ctx context.Context) ([]domain.InventoryItem, error)
	Get(ctx context.Context, id string) (domain.InventoryItem, error)
	Upsert(ctx context.Context, item domain.InventoryItem) error
	Delete(ctx context.Context, id string) error
	// Adjust applies fn to the stored item atomically and returns the result.
	Adjust(ctx context.Context, id string, fn func(domain.InventoryItem) domain.InventoryItem) (domain.InventoryItem, error)
	Watch(ctx context.Context, fn func([]domain.InventoryItem)) (stop func(), err error)
}

type RecipeRepo interface {
	List(ctx context.Context) ([]domain.ProductRecipe, error)
	Get(ctx context.Context, id string) (domain.ProductRecipe, error)
	Upsert(ctx context.Context, r domain.ProductRecipe) error
	Delete(ctx context.Context, id string) error
	Watch(ctx context.Context, fn func([]domain.ProductRecipe)) (stop func(), err error)
}

// Observer is told about every new catalog snapshot.
type Observer interface {
	CatalogChanged(s *domain.Snapshot)
}

type ObserverFunc func(s *domain.Snapshot)

func (f ObserverFunc) CatalogChanged(s *domain.Snapshot) { f(s) }
