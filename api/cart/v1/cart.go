// Package cartv1 describes the CartService wire contract.
package cartv1

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.cart.v1.CartService"

type Empty struct{}

type UserID struct {
	UserID string `json:"userId"`
}

// CustomDessert carries the priced components of a dessert built by the
// customer. Filling and frosting are optional.
type CustomDessert struct {
	Name        string                 `json:"name,omitempty"`
	Base        catalogv1.Ingredient   `json:"base"`
	Filling     *catalogv1.Ingredient  `json:"filling,omitempty"`
	Frosting    *catalogv1.Ingredient  `json:"frosting,omitempty"`
	Toppings    []catalogv1.Ingredient `json:"toppings,omitempty"`
	Decorations []catalogv1.Ingredient `json:"decorations,omitempty"`
}

type BasicProduct struct {
	ProductID string `json:"productId"`
	RecipeID  string `json:"recipeId,omitempty"`
	Name      string `json:"name,omitempty"`
}

// Line is shared by the checkout and order contracts. Kind is "custom" or
// "basic" and selects which of Custom and Basic is set.
type Line struct {
	Key       string          `json:"key,omitempty"`
	Kind      string          `json:"kind"`
	Custom    *CustomDessert  `json:"custom,omitempty"`
	Basic     *BasicProduct   `json:"basic,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

type Cart struct {
	UserID    string    `json:"userId"`
	Lines     []Line    `json:"lines"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item names what to add. Basic items need ProductID; custom items need
// BaseID and may name the other components.
type Item struct {
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity"`

	ProductID string `json:"productId,omitempty"`

	Name          string   `json:"name,omitempty"`
	BaseID        string   `json:"baseId,omitempty"`
	FillingID     string   `json:"fillingId,omitempty"`
	FrostingID    string   `json:"frostingId,omitempty"`
	ToppingIDs    []string `json:"toppingIds,omitempty"`
	DecorationIDs []string `json:"decorationIds,omitempty"`
}

type AddItemRequest struct {
	UserID string `json:"userId"`
	Item   Item   `json:"item"`
}

type RemoveItemRequest struct {
	UserID string `json:"userId"`
	Key    string `json:"key"`
}

type SetItemQuantityRequest struct {
	UserID   string `json:"userId"`
	Key      string `json:"key"`
	Quantity int    `json:"quantity"`
}

type ReplaceRequest struct {
	UserID string `json:"userId"`
	Lines  []Line `json:"lines"`
}

type CartResponse struct {
	Cart     Cart            `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartServiceServer interface {
	GetCart(context.Context, *UserID) (*CartResponse, error)
	AddItem(context.Context, *AddItemRequest) (*CartResponse, error)
	RemoveItem(context.Context, *RemoveItemRequest) (*CartResponse, error)
	SetItemQuantity(context.Context, *SetItemQuantityRequest) (*CartResponse, error)
	ReplaceCart(context.Context, *ReplaceRequest) (*CartResponse, error)
	ClearCart(context.Context, *UserID) (*Empty, error)
}

var CartService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CartServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "GetCart", CartServiceServer.GetCart),
		grpcjson.Unary(ServiceName, "AddItem", CartServiceServer.AddItem),
		grpcjson.Unary(ServiceName, "RemoveItem", CartServiceServer.RemoveItem),
		grpcjson.Unary(ServiceName, "SetItemQuantity", CartServiceServer.SetItemQuantity),
		grpcjson.Unary(ServiceName, "ReplaceCart", CartServiceServer.ReplaceCart),
		grpcjson.Unary(ServiceName, "ClearCart", CartServiceServer.ClearCart),
	},
	Metadata: "cart/v1/cart",
}

func RegisterCartServiceServer(s grpc.ServiceRegistrar, srv CartServiceServer) {
	s.RegisterService(&CartService_ServiceDesc, srv)
}

type CartServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCartServiceClient(cc grpc.ClientConnInterface) *CartServiceClient {
	return &CartServiceClient{cc: cc}
}

func (c *CartServiceClient) GetCart(ctx context.Context, req *UserID) (*CartResponse, error) {
	return grpcjson.Invoke[CartResponse](ctx, c.cc, ServiceName, "GetCart", req)
}

func (c *CartServiceClient) AddItem(ctx context.Context, req *AddItemRequest) (*CartResponse, error) {
	return grpcjson.Invoke[CartResponse](ctx, c.cc, ServiceName, "AddItem", req)
}

func (c *CartServiceClient) RemoveItem(ctx context.Context, req *RemoveItemRequest) (*CartResponse, error) {
	return grpcjson.Invoke[CartResponse](ctx, c.cc, ServiceName, "RemoveItem", req)
}

func (c *CartServiceClient) SetItemQuantity(ctx context.Context, req *SetItemQuantityRequest) (*CartResponse, error) {
	return grpcjson.Invoke[CartResponse](ctx, c.cc, ServiceName, "SetItemQuantity", req)
}

func (c *CartServiceClient) ReplaceCart(ctx context.Context, req *ReplaceRequest) (*CartResponse, error) {
	return grpcjson.Invoke[CartResponse](ctx, c.cc, ServiceName, "ReplaceCart", req)
}

func (c *CartServiceClient) ClearCart(ctx context.Context, req *UserID) (*Empty, error) {
	return grpcjson.Invoke[Empty](ctx, c.cc, ServiceName, "ClearCart", req)
}
