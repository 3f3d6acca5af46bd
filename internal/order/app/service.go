package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	checkout "github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const idPrefix = "ord-"

type PlaceOrderRequest struct {
	UserID         string                  `json:"userId"`
	DeliveryMethod checkout.DeliveryMethod `json:"deliveryMethod"`
	PaymentMethod  checkout.PaymentMethod  `json:"paymentMethod"`
	Contact        domain.Contact          `json:"contact"`
}

type Service struct {
	repo     OrderRepo
	quoter   Quoter
	carts    Carts
	deductor Deductor
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

func NewService(repo OrderRepo, quoter Quoter, carts Carts, deductor Deductor, notifier Notifier, log *slog.Logger) *Service {
	log = logger.Component(log, "order")
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	return &Service{
		repo:     repo,
		quoter:   quoter,
		carts:    carts,
		deductor: deductor,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// PlaceOrder prices the cart at this moment, records a pending order, then
// deducts inventory and removes the ordered lines from the cart. Once the order is recorded, later
// failures are logged and the order is still returned.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (domain.Order, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return domain.Order{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if !req.DeliveryMethod.Valid() {
		return domain.Order{}, fmt.Errorf("%w: delivery method %q", ErrInvalidInput, req.DeliveryMethod)
	}
	if !req.PaymentMethod.Valid() {
		return domain.Order{}, fmt.Errorf("%w: payment method %q", ErrInvalidInput, req.PaymentMethod)
	}

	quote, err := s.quoter.Quote(ctx, req.UserID, req.DeliveryMethod)
	if err != nil {
		return domain.Order{}, err
	}

	order := domain.New(idPrefix+uuid.NewString(), req.UserID, quote, req.PaymentMethod, req.Contact, s.now().UTC())
	if err := s.repo.Create(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}
	s.log.Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("user_id", order.UserID),
		slog.String("total", order.Total.String()),
	)

	if _, err := s.deductor.Deduct(ctx, order.ID, order.Items); err != nil {
		s.log.Error("order kept without full inventory deduction", slog.String("order_id", order.ID), slog.Any("err", err))
	}
	if err := s.carts.ClearLines(ctx, req.UserID, order.Items); err != nil {
		s.log.Error("clear cart after order", slog.String("order_id", order.ID), slog.Any("err", err))
	}
	return order, nil
}

// UpdateStatus advances an order. Reaching ready notifies the customer.
func (s *Service) UpdateStatus(ctx context.Context, id string, to domain.Status, eta string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" || !to.Valid() {
		return domain.Order{}, ErrInvalidInput
	}

	order, err := s.repo.Update(ctx, id, func(o domain.Order) (domain.Order, error) {
		return o.Transition(to, eta, s.now().UTC())
	})
	if err != nil {
		return domain.Order{}, err
	}
	s.log.Info("order status changed", slog.String("order_id", id), slog.String("status", string(to)))

	if to == domain.StatusReady {
		if err := s.notifier.OrderReady(ctx, order); err != nil {
			s.log.Warn("ready notification failed", slog.String("order_id", id), slog.Any("err", err))
		}
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// ListOrders returns orders newest first; an empty userID lists everyone's.
func (s *Service) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return orders, nil
	}
	out := make([]domain.Order, 0)
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *Service) Board(ctx context.Context) (domain.Board, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return domain.Board{}, err
	}
	return domain.NewBoard(orders), nil
}

// Reorder fills the user's cart with the lines of one of their past orders.
func (s *Service) Reorder(ctx context.Context, userID, orderID string) (cart.Cart, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return cart.Cart{}, err
	}
	if order.UserID != userID {
		return cart.Cart{}, ErrNotFound
	}
	return s.carts.Replace(ctx, userID, order.Items)
}
