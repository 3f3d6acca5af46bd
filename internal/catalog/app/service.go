package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	items     InventoryRepo
	recipes   RecipeRepo
	log       *slog.Logger
	observers []Observer

	pubMu sync.Mutex
	snap  atomic.Pointer[domain.Snapshot]

	mu    sync.Mutex
	stops []func()
}

func NewService(items InventoryRepo, recipes RecipeRepo, log *slog.Logger, observers ...Observer) *Service {
	s := &Service{
		items:     items,
		recipes:   recipes,
		log:       logger.Component(log, "catalog"),
		observers: observers,
	}
	s.snap.Store(domain.NewSnapshot(nil, nil))
	return s
}

// Start subscribes to inventory and recipe changes; Snapshot reflects the
// stored catalog once Start returns.
func (s *Service) Start(ctx context.Context) error {
	stopItems, err := s.items.Watch(ctx, func(items []domain.InventoryItem) {
		s.publish(func(cur *domain.Snapshot) *domain.Snapshot { return cur.WithItems(items) })
	})
	if err != nil {
		return fmt.Errorf("watch inventory: %w", err)
	}
	stopRecipes, err := s.recipes.Watch(ctx, func(recipes []domain.ProductRecipe) {
		s.publish(func(cur *domain.Snapshot) *domain.Snapshot { return cur.WithRecipes(recipes) })
	})
	if err != nil {
		stopItems()
		return fmt.Errorf("watch recipes: %w", err)
	}

	s.mu.Lock()
	s.stops = append(s.stops, stopItems, stopRecipes)
	s.mu.Unlock()
	s.log.Info("catalog watchers started")
	return nil
}

func (s *Service) Stop() {
	s.mu.Lock()
	stops := s.stops
	s.stops = nil
	s.mu.Unlock()
	for _, stop := range stops {
		stop()
	}
}

// Snapshot is the latest catalog view. It never returns nil.
func (s *Service) Snapshot() *domain.Snapshot {
	return s.snap.Load()
}

func (s *Service) publish(change func(*domain.Snapshot) *domain.Snapshot) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	next := change(s.snap.Load())
	s.snap.Store(next)
	for _, o := range s.observers {
		o.CatalogChanged(next)
	}
}

func (s *Service) ListInventory(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items.List(ctx)
}

// ListIngredients returns the sellable components for the dessert builder.
func (s *Service) ListIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Ingredient, 0, len(items))
	for _, it := range items {
		if it.Category.Sellable() {
			out = append(out, it.Ingredient)
		}
	}
	return out, nil
}

func (s *Service) GetItem(ctx context.Context, id string) (domain.InventoryItem, error) {
	if strings.TrimSpace(id) == "" {
		return domain.InventoryItem{}, ErrInvalidInput
	}
	return s.items.Get(ctx, id)
}

func (s *Service) UpsertItem(ctx context.Context, item domain.InventoryItem) (domain.InventoryItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := item.Validate(); err != nil {
		return domain.InventoryItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.items.Upsert(ctx, item); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.items.Delete(ctx, id)
}

// AdjustStock adds delta to an item's stock in a single atomic step. The
// result is clamped at zero.
func (s *Service) AdjustStock(ctx context.Context, id string, delta float64) (domain.InventoryItem, error) {
	if strings.TrimSpace(id) == "" {
		return domain.InventoryItem{}, ErrInvalidInput
	}
	return s.items.Adjust(ctx, id, func(it domain.InventoryItem) domain.InventoryItem {
		return it.Adjust(delta)
	})
}

func (s *Service) ListRecipes(ctx context.Context) ([]domain.ProductRecipe, error) {
	return s.recipes.List(ctx)
}

func (s *Service) GetRecipe(ctx context.Context, id string) (domain.ProductRecipe, error) {
	if strings.TrimSpace(id) == "" {
		return domain.ProductRecipe{}, ErrInvalidInput
	}
	return s.recipes.Get(ctx, id)
}

func (s *Service) UpsertRecipe(ctx context.Context, r domain.ProductRecipe) (domain.ProductRecipe, error) {
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := r.Validate(); err != nil {
		return domain.ProductRecipe{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.recipes.Upsert(ctx, r); err != nil {
		return domain.ProductRecipe{}, err
	}
	return r, nil
}

func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.recipes.Delete(ctx, id)
}

// GetCosting reads the recipe and the inventory it depends on from storage
// and prices it. Results are never cached.
func (s *Service) GetCosting(ctx context.Context, recipeID string) (domain.Costing, error) {
	if strings.TrimSpace(recipeID) == "" {
		return domain.Costing{}, ErrInvalidInput
	}

	var (
		recipe domain.ProductRecipe
		items  []domain.InventoryItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		recipe, err = s.recipes.Get(gctx, recipeID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.items.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Costing{}, err
	}

	return domain.ComputeCosting(recipe, domain.NewSnapshot(items, nil)), nil
}

// ListCostings prices every recipe against one consistent inventory read.
func (s *Service) ListCostings(ctx context.Context) ([]domain.Costing, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := domain.NewSnapshot(items, nil)
	out := make([]domain.Costing, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, domain.ComputeCosting(r, snap))
	}
	return out, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewSnapshot(nil, recipes).BasicProducts(), nil
}

func (s *Service) LowStock(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.NewSnapshot(items, nil).LowStock(), nil
}
