package adapter

import (
	"context"

	cartapp "github.com/dwikikusuma/bakery-shop/internal/cart/app"
	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, userID string) ([]cart.Line, error) {
	c, err := r.svc.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.Lines, nil
}
