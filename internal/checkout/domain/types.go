package domain

import (
	"github.com/shopspring/decimal"

	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
)

type DeliveryMethod string

const (
	DeliveryPickup   DeliveryMethod = "pickup"
	DeliveryDelivery DeliveryMethod = "delivery"
)

func (m DeliveryMethod) Valid() bool { return m == DeliveryPickup || m == DeliveryDelivery }

type PaymentMethod string

const (
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCash     PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool { return m == PaymentTransfer || m == PaymentCash }

type Quote struct {
	Lines          []cart.Line     `json:"lines"`
	DeliveryMethod DeliveryMethod  `json:"deliveryMethod"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Total          decimal.Decimal `json:"total"`
}

// Price totals lines and charges fee only for delivery.
func Price(lines []cart.Line, method DeliveryMethod, fee decimal.Decimal) Quote {
	q := Quote{
		Lines:          lines,
		DeliveryMethod: method,
		Subtotal:       cart.Subtotal(lines),
		DeliveryFee:    decimal.Zero,
	}
	if method == DeliveryDelivery {
		q.DeliveryFee = fee
	}
	q.Total = q.Subtotal.Add(q.DeliveryFee)
	return q
}
