// Package orderv1 describes the OrderService wire contract.
package orderv1

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.order.v1.OrderService"

type Empty struct{}

type Contact struct {
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type PlaceOrderRequest struct {
	UserID         string  `json:"userId"`
	DeliveryMethod string  `json:"deliveryMethod"`
	PaymentMethod  string  `json:"paymentMethod"`
	Contact        Contact `json:"contact"`
}

type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Items          []cartv1.Line   `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	Total          decimal.Decimal `json:"total"`
	PaymentMethod  string          `json:"paymentMethod"`
	DeliveryMethod string          `json:"deliveryMethod"`
	Contact        Contact         `json:"contact"`
	Status         string          `json:"status"`
	EstimatedTime  string          `json:"estimatedTime,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type OrderResponse struct {
	Order Order `json:"order"`
}

type UpdateStatusRequest struct {
	OrderID       string `json:"orderId"`
	Status        string `json:"status"`
	EstimatedTime string `json:"estimatedTime,omitempty"`
}

type GetOrderRequest struct {
	OrderID string `json:"orderId"`
}

type ListOrdersRequest struct {
	// UserID filters to one customer; empty lists every order.
	UserID string `json:"userId,omitempty"`
}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type Board struct {
	Pending   []Order `json:"pending"`
	Active    []Order `json:"active"`
	Completed []Order `json:"completed"`
}

type BoardResponse struct {
	Board Board `json:"board"`
}

type ReorderRequest struct {
	UserID  string `json:"userId"`
	OrderID string `json:"orderId"`
}

type ReorderResponse struct {
	Cart cartv1.Cart `json:"cart"`
}

type OrderServiceServer interface {
	PlaceOrder(context.Context, *PlaceOrderRequest) (*OrderResponse, error)
	UpdateStatus(context.Context, *UpdateStatusRequest) (*OrderResponse, error)
	GetOrder(context.Context, *GetOrderRequest) (*OrderResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	Board(context.Context, *Empty) (*BoardResponse, error)
	Reorder(context.Context, *ReorderRequest) (*ReorderResponse, error)
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "PlaceOrder", OrderServiceServer.PlaceOrder),
		grpcjson.Unary(ServiceName, "UpdateStatus", OrderServiceServer.UpdateStatus),
		grpcjson.Unary(ServiceName, "GetOrder", OrderServiceServer.GetOrder),
		grpcjson.Unary(ServiceName, "ListOrders", OrderServiceServer.ListOrders),
		grpcjson.Unary(ServiceName, "Board", OrderServiceServer.Board),
		grpcjson.Unary(ServiceName, "Reorder", OrderServiceServer.Reorder),
	},
	Metadata: "order/v1/order",
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

type OrderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) *OrderServiceClient {
	return &OrderServiceClient{cc: cc}
}

func (c *OrderServiceClient) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	return grpcjson.Invoke[OrderResponse](ctx, c.cc, ServiceName, "PlaceOrder", req)
}

func (c *OrderServiceClient) UpdateStatus(ctx context.Context, req *UpdateStatusRequest) (*OrderResponse, error) {
	return grpcjson.Invoke[OrderResponse](ctx, c.cc, ServiceName, "UpdateStatus", req)
}

func (c *OrderServiceClient) GetOrder(ctx context.Context, req *GetOrderRequest) (*OrderResponse, error) {
	return grpcjson.Invoke[OrderResponse](ctx, c.cc, ServiceName, "GetOrder", req)
}

func (c *OrderServiceClient) ListOrders(ctx context.Context, req *ListOrdersRequest) (*ListOrdersResponse, error) {
	return grpcjson.Invoke[ListOrdersResponse](ctx, c.cc, ServiceName, "ListOrders", req)
}

func (c *OrderServiceClient) Board(ctx context.Context) (*BoardResponse, error) {
	return grpcjson.Invoke[BoardResponse](ctx, c.cc, ServiceName, "Board", &Empty{})
}

func (c *OrderServiceClient) Reorder(ctx context.Context, req *ReorderRequest) (*ReorderResponse, error) {
	return grpcjson.Invoke[ReorderResponse](ctx, c.cc, ServiceName, "Reorder", req)
}
