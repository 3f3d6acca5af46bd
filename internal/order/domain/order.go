package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	checkout "github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrETARequired       = errors.New("estimated time is required to confirm")
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusReady      Status = "ready"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed},
	StatusConfirmed:  {StatusInProgress, StatusReady},
	StatusInProgress: {StatusReady},
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusReady:
		return true
	}
	return false
}

func (s Status) Terminal() bool { return s == StatusReady }

func (s Status) CanTransition(to Status) bool {
	return slices.Contains(transitions[s], to)
}

// Contact is what the shop needs to reach the customer about an order.
type Contact struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Order struct {
	ID             string                  `json:"id"`
	UserID         string                  `json:"userId"`
	Items          []cart.Line             `json:"items"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	DeliveryFee    decimal.Decimal         `json:"deliveryFee"`
	Total          decimal.Decimal         `json:"total"`
	PaymentMethod  checkout.PaymentMethod  `json:"paymentMethod"`
	DeliveryMethod checkout.DeliveryMethod `json:"deliveryMethod"`
	Contact        Contact                 `json:"contact"`
	Status         Status                  `json:"status"`
	// EstimatedTime is set when the order is confirmed; read it through ETA.
	EstimatedTime string    `json:"estimatedTime,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// New records a priced quote as a pending order.
func New(id, userID string, q checkout.Quote, pay checkout.PaymentMethod, contact Contact, now time.Time) Order {
	return Order{
		ID:             id,
		UserID:         userID,
		Items:          q.Lines,
		Subtotal:       q.Subtotal,
		DeliveryFee:    q.DeliveryFee,
		Total:          q.Total,
		PaymentMethod:  pay,
		DeliveryMethod: q.DeliveryMethod,
		Contact:        contact,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ETA is only available once the order has been confirmed.
func (o Order) ETA() (string, bool) {
	if o.Status == StatusPending || o.EstimatedTime == "" {
		return "", false
	}
	return o.EstimatedTime, true
}

// Transition moves the order to status to. Confirming requires eta.
func (o Order) Transition(to Status, eta string, now time.Time) (Order, error) {
	if !o.Status.CanTransition(to) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	if to == StatusConfirmed {
		eta = strings.TrimSpace(eta)
		if eta == "" {
			return Order{}, ErrETARequired
		}
		o.EstimatedTime = eta
	}
	o.Status = to
	o.UpdatedAt = now
	return o, nil
}

// Board groups orders for the admin dashboard: pending oldest first, active
// and completed newest first.
type Board struct {
	Pending   []Order `json:"pending"`
	Active    []Order `json:"active"`
	Completed []Order `json:"completed"`
}

func NewBoard(orders []Order) Board {
	b := Board{Pending: []Order{}, Active: []Order{}, Completed: []Order{}}
	for _, o := range orders {
		switch o.Status {
		case StatusPending:
			b.Pending = append(b.Pending, o)
		case StatusConfirmed, StatusInProgress:
			b.Active = append(b.Active, o)
		case StatusReady:
			b.Completed = append(b.Completed, o)
		}
	}
	oldestFirst := func(a, b Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	newestFirst := func(a, b Order) int { return b.CreatedAt.Compare(a.CreatedAt) }
	slices.SortStableFunc(b.Pending, oldestFirst)
	slices.SortStableFunc(b.Active, newestFirst)
	slices.SortStableFunc(b.Completed, newestFirst)
	return b
}
