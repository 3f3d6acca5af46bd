package app

import (
	"context"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	checkout "github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
	inventoryapp "github.com/dwikikusuma/bakery-shop/internal/inventory/app"
	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
	// List returns every order, newest first.
	List(ctx context.Context) ([]domain.Order, error)
	// Update applies fn to the stored order atomically.
	Update(ctx context.Context, id string, fn func(domain.Order) (domain.Order, error)) (domain.Order, error)
}

type Quoter interface {
	Quote(ctx context.Context, userID string, method checkout.DeliveryMethod) (checkout.Quote, error)
}

type Carts interface {
	// ClearLines removes the ordered lines, leaving anything added since.
	ClearLines(ctx context.Context, userID string, lines []cart.Line) error
	Replace(ctx context.Context, userID string, lines []cart.Line) (cart.Cart, error)
}

type Deductor interface {
	Deduct(ctx context.Context, orderID string, lines []cart.Line) (inventoryapp.Result, error)
}

// Notifier tells the customer their order is ready.
type Notifier interface {
	OrderReady(ctx context.Context, o domain.Order) error
}
