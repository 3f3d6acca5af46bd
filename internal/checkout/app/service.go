package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	"github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
)

type CartReader interface {
	GetCart(ctx context.Context, userID string) ([]cart.Line, error)
}

// FeeReader returns the delivery fee configured right now.
type FeeReader interface {
	DeliveryFee(ctx context.Context) (decimal.Decimal, error)
}

var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	Cart CartReader
	Fees FeeReader
}

func NewService(cart CartReader, fees FeeReader) *Service {
	return &Service{Cart: cart, Fees: fees}
}

// Quote prices the user's cart using the fee read at call time.
func (s *Service) Quote(ctx context.Context, userID string, method domain.DeliveryMethod) (domain.Quote, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Quote{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !method.Valid() {
		return domain.Quote{}, fmt.Errorf("%w: delivery method %q", ErrInvalidInput, method)
	}

	var (
		lines []cart.Line
		fee   decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lines, err = s.Cart.GetCart(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		fee, err = s.Fees.DeliveryFee(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	if len(lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}
	return domain.Price(lines, method, fee), nil
}
