// Package checkoutv1 describes the CheckoutService wire contract.
package checkoutv1

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.checkout.v1.CheckoutService"

type QuoteRequest struct {
	UserID string `json:"userId"`
	// DeliveryMethod is "pickup" or "delivery".
	DeliveryMethod string `json:"deliveryMethod"`
}

type Quote struct {
	Lines          []cartv1.Line   `json:"lines"`
	DeliveryMethod string          `json:"deliveryMethod"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Total          decimal.Decimal `json:"total"`
}

type QuoteResponse struct {
	Quote Quote `json:"quote"`
}

type CheckoutServiceServer interface {
	Quote(context.Context, *QuoteRequest) (*QuoteResponse, error)
}

var CheckoutService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CheckoutServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "Quote", CheckoutServiceServer.Quote),
	},
	Metadata: "checkout/v1/checkout",
}

func RegisterCheckoutServiceServer(s grpc.ServiceRegistrar, srv CheckoutServiceServer) {
	s.RegisterService(&CheckoutService_ServiceDesc, srv)
}

type CheckoutServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCheckoutServiceClient(cc grpc.ClientConnInterface) *CheckoutServiceClient {
	return &CheckoutServiceClient{cc: cc}
}

func (c *CheckoutServiceClient) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	return grpcjson.Invoke[QuoteResponse](ctx, c.cc, ServiceName, "Quote", req)
}
