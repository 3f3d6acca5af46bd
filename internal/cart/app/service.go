package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

// ItemRequest names what to add by catalog id; prices come from the catalog.
type ItemRequest struct {
	Kind     domain.Kind `json:"kind"`
	Quantity int         `json:"quantity"`

	ProductID string `json:"productId,omitempty"`

	Name          string   `json:"name,omitempty"`
	BaseID        string   `json:"baseId,omitempty"`
	FillingID     string   `json:"fillingId,omitempty"`
	FrostingID    string   `json:"frostingId,omitempty"`
	ToppingIDs    []string `json:"toppingIds,omitempty"`
	DecorationIDs []string `json:"decorationIds,omitempty"`
}

type Service struct {
	repo    CartRepo
	catalog Catalog
	locks   *userLocks
	log     *slog.Logger
	now     func() time.Time
}

func NewService(repo CartRepo, catalog Catalog, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		locks:   newUserLocks(),
		log:     logger.Component(log, "cart"),
		now:     time.Now,
	}
}

// GetCart returns the stored cart or an empty one.
func (s *Service) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	cart, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return domain.Cart{UserID: userID}, nil
	}
	return cart, err
}

func (s *Service) AddItem(ctx context.Context, userID string, req ItemRequest) (domain.Cart, error) {
	line, err := s.resolve(req)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.mutate(ctx, userID, func(lines []domain.Line) ([]domain.Line, error) {
		return domain.AddToCart(lines, line), nil
	})
}

func (s *Service) RemoveItem(ctx context.Context, userID, key string) (domain.Cart, error) {
	k, ok := domain.ParseKey(key)
	if !ok {
		return domain.Cart{}, fmt.Errorf("%w: bad line key %q", ErrInvalidInput, key)
	}
	return s.mutate(ctx, userID, func(lines []domain.Line) ([]domain.Line, error) {
		return domain.RemoveLine(lines, k), nil
	})
}

// SetItemQuantity replaces a line's quantity; zero or less removes the line.
func (s *Service) SetItemQuantity(ctx context.Context, userID, key string, qty int) (domain.Cart, error) {
	k, ok := domain.ParseKey(key)
	if !ok {
		return domain.Cart{}, fmt.Errorf("%w: bad line key %q", ErrInvalidInput, key)
	}
	return s.mutate(ctx, userID, func(lines []domain.Line) ([]domain.Line, error) {
		out, found := domain.SetQuantity(lines, k, qty)
		if !found {
			return nil, ErrNotFound
		}
		return out, nil
	})
}

func (s *Service) ClearCart(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	unlock := s.locks.lock(userID)
	defer unlock()
	return s.repo.Delete(ctx, userID)
}

// ClearLines removes what an order took from the cart. Items added after
// the order was priced are kept.
func (s *Service) ClearLines(ctx context.Context, userID string, lines []domain.Line) error {
	_, err := s.mutate(ctx, userID, func(current []domain.Line) ([]domain.Line, error) {
		return domain.Subtract(current, lines), nil
	})
	return err
}

// Replace swaps the whole cart for lines, merging duplicates. Used to
// reorder a past order.
func (s *Service) Replace(ctx context.Context, userID string, lines []domain.Line) (domain.Cart, error) {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return domain.Cart{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return s.mutate(ctx, userID, func([]domain.Line) ([]domain.Line, error) {
		var out []domain.Line
		for _, l := range lines {
			out = domain.AddToCart(out, l)
		}
		return out, nil
	})
}

func (s *Service) mutate(ctx context.Context, userID string, fn func([]domain.Line) ([]domain.Line, error)) (domain.Cart, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Cart{}, ErrInvalidInput
	}
	unlock := s.locks.lock(userID)
	defer unlock()

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return domain.Cart{}, err
	}
	lines, err := fn(cart.Lines)
	if err != nil {
		return domain.Cart{}, err
	}

	cart.Lines = lines
	cart.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *Service) resolve(req ItemRequest) (domain.Line, error) {
	if req.Quantity < 1 {
		return domain.Line{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}
	snap := s.catalog.Snapshot()

	switch req.Kind {
	case domain.KindBasic:
		p, ok := snap.Product(req.ProductID)
		if !ok {
			return domain.Line{}, fmt.Errorf("%w: product %q", ErrNotFound, req.ProductID)
		}
		return domain.Line{
			Kind:      domain.KindBasic,
			Basic:     &domain.BasicProduct{ProductID: p.ID, RecipeID: p.RecipeID, Name: p.Name},
			UnitPrice: p.Price,
			Quantity:  req.Quantity,
		}, nil

	case domain.KindCustom:
		if strings.TrimSpace(req.BaseID) == "" {
			return domain.Line{}, fmt.Errorf("%w: custom dessert needs a base", ErrInvalidInput)
		}
		base, err := component(snap, req.BaseID, catalog.CategoryBase)
		if err != nil {
			return domain.Line{}, err
		}
		d := domain.CustomDessert{Name: strings.TrimSpace(req.Name), Base: base}
		if req.FillingID != "" {
			f, err := component(snap, req.FillingID, catalog.CategoryFilling)
			if err != nil {
				return domain.Line{}, err
			}
			d.Filling = &f
		}
		if req.FrostingID != "" {
			f, err := component(snap, req.FrostingID, catalog.CategoryFrosting)
			if err != nil {
				return domain.Line{}, err
			}
			d.Frosting = &f
		}
		for _, id := range req.ToppingIDs {
			tp, err := component(snap, id, catalog.CategoryTopping)
			if err != nil {
				return domain.Line{}, err
			}
			d.Toppings = append(d.Toppings, tp)
		}
		for _, id := range req.DecorationIDs {
			dc, err := component(snap, id, catalog.CategoryDecoration)
			if err != nil {
				return domain.Line{}, err
			}
			d.Decorations = append(d.Decorations, dc)
		}
		return domain.Line{Kind: domain.KindCustom, Custom: &d, UnitPrice: d.Price(), Quantity: req.Quantity}, nil
	}

	return domain.Line{}, fmt.Errorf("%w: unknown line kind %q", ErrInvalidInput, req.Kind)
}

func component(snap *catalog.Snapshot, id string, want catalog.Category) (catalog.Ingredient, error) {
	it, ok := snap.Item(id)
	if !ok {
		return catalog.Ingredient{}, fmt.Errorf("%w: ingredient %q", ErrNotFound, id)
	}
	if it.Category != want {
		return catalog.Ingredient{}, fmt.Errorf("%w: %q is a %s, not a %s", ErrInvalidInput, id, it.Category, want)
	}
	return it.Ingredient, nil
}
