package grpc

import (
	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	cartgrpc "github.com/dwikikusuma/bakery-shop/internal/cart/grpc"
	checkout "github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
	"github.com/dwikikusuma/bakery-shop/internal/order/app"
	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
)

func placeRequestFromProto(m *orderv1.PlaceOrderRequest) app.PlaceOrderRequest {
	return app.PlaceOrderRequest{
		UserID:         m.UserID,
		DeliveryMethod: checkout.DeliveryMethod(m.DeliveryMethod),
		PaymentMethod:  checkout.PaymentMethod(m.PaymentMethod),
		Contact:        domain.Contact(m.Contact),
	}
}

func orderToProto(o domain.Order) orderv1.Order {
	return orderv1.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		Items:          cartgrpc.LinesToProto(o.Items),
		Subtotal:       o.Subtotal,
		DeliveryFee:    o.DeliveryFee,
		Total:          o.Total,
		PaymentMethod:  string(o.PaymentMethod),
		DeliveryMethod: string(o.DeliveryMethod),
		Contact:        orderv1.Contact(o.Contact),
		Status:         string(o.Status),
		EstimatedTime:  o.EstimatedTime,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func ordersToProto(orders []domain.Order) []orderv1.Order {
	out := make([]orderv1.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToProto(o))
	}
	return out
}

func boardToProto(b domain.Board) orderv1.Board {
	return orderv1.Board{
		Pending:   ordersToProto(b.Pending),
		Active:    ordersToProto(b.Active),
		Completed: ordersToProto(b.Completed),
	}
}
