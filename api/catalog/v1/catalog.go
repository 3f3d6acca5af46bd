// Package catalogv1 describes the CatalogService wire contract. Messages
// travel as JSON through pkg/grpcjson.
package catalogv1

import (
	"context"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc"

	"github.com/dwikikusuma/bakery-shop/pkg/grpcjson"
)

const ServiceName = "bakery.catalog.v1.CatalogService"

type Empty struct{}

type IDRequest struct {
	ID string `json:"id"`
}

// Ingredient is the customer-facing part of an inventory item.
type Ingredient struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Category               string          `json:"category"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	ApplicableProductTypes []string        `json:"applicableProductTypes,omitempty"`
}

type InventoryItem struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Category               string          `json:"category"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	ApplicableProductTypes []string        `json:"applicableProductTypes,omitempty"`
	QuantityOnHand         float64         `json:"quantityOnHand"`
	LowStockThreshold      float64         `json:"lowStockThreshold"`
	UnitCost               decimal.Decimal `json:"unitCost"`
	PackageSize            float64         `json:"packageSize"`
	Unit                   string          `json:"unit"`
	ImageURL               string          `json:"imageUrl,omitempty"`
}

type RecipeLine struct {
	IngredientID string  `json:"ingredientId"`
	Amount       float64 `json:"amount"`
}

type Recipe struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	ProductType         string          `json:"productType"`
	IngredientLines     []RecipeLine    `json:"ingredientLines"`
	OverheadCost        decimal.Decimal `json:"overheadCost"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	RecipeYield         int             `json:"recipeYield"`
	SellingPrice        decimal.Decimal `json:"sellingPrice"`
	ImageURL            string          `json:"imageUrl,omitempty"`
}

type Costing struct {
	RecipeID       string          `json:"recipeId"`
	IngredientCost decimal.Decimal `json:"ingredientCost"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
}

type Product struct {
	ID          string          `json:"id"`
	RecipeID    string          `json:"recipeId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ProductType string          `json:"productType"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

type ListInventoryResponse struct {
	Items []InventoryItem `json:"items"`
}

type ListIngredientsResponse struct {
	Ingredients []Ingredient `json:"ingredients"`
}

type ItemResponse struct {
	Item InventoryItem `json:"item"`
}

type UpsertItemRequest struct {
	Item InventoryItem `json:"item"`
}

type AdjustStockRequest struct {
	ID    string  `json:"id"`
	Delta float64 `json:"delta"`
}

type ListRecipesResponse struct {
	Recipes []Recipe `json:"recipes"`
}

type RecipeResponse struct {
	Recipe Recipe `json:"recipe"`
}

type UpsertRecipeRequest struct {
	Recipe Recipe `json:"recipe"`
}

type CostingResponse struct {
	Costing Costing `json:"costing"`
}

type ListCostingsResponse struct {
	Costings []Costing `json:"costings"`
}

type ListProductsResponse struct {
	Products []Product `json:"products"`
}

type CatalogServiceServer interface {
	ListInventory(context.Context, *Empty) (*ListInventoryResponse, error)
	// ListIngredients returns the components customers may pick, without
	// stock levels or purchase costs.
	ListIngredients(context.Context, *Empty) (*ListIngredientsResponse, error)
	UpsertItem(context.Context, *UpsertItemRequest) (*ItemResponse, error)
	DeleteItem(context.Context, *IDRequest) (*Empty, error)
	AdjustStock(context.Context, *AdjustStockRequest) (*ItemResponse, error)
	ListRecipes(context.Context, *Empty) (*ListRecipesResponse, error)
	UpsertRecipe(context.Context, *UpsertRecipeRequest) (*RecipeResponse, error)
	DeleteRecipe(context.Context, *IDRequest) (*Empty, error)
	GetCosting(context.Context, *IDRequest) (*CostingResponse, error)
	ListCostings(context.Context, *Empty) (*ListCostingsResponse, error)
	ListProducts(context.Context, *Empty) (*ListProductsResponse, error)
	LowStock(context.Context, *Empty) (*ListInventoryResponse, error)
}

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		grpcjson.Unary(ServiceName, "ListInventory", CatalogServiceServer.ListInventory),
		grpcjson.Unary(ServiceName, "ListIngredients", CatalogServiceServer.ListIngredients),
		grpcjson.Unary(ServiceName, "UpsertItem", CatalogServiceServer.UpsertItem),
		grpcjson.Unary(ServiceName, "DeleteItem", CatalogServiceServer.DeleteItem),
		grpcjson.Unary(ServiceName, "AdjustStock", CatalogServiceServer.AdjustStock),
		grpcjson.Unary(ServiceName, "ListRecipes", CatalogServiceServer.ListRecipes),
		grpcjson.Unary(ServiceName, "UpsertRecipe", CatalogServiceServer.UpsertRecipe),
		grpcjson.Unary(ServiceName, "DeleteRecipe", CatalogServiceServer.DeleteRecipe),
		grpcjson.Unary(ServiceName, "GetCosting", CatalogServiceServer.GetCosting),
		grpcjson.Unary(ServiceName, "ListCostings", CatalogServiceServer.ListCostings),
		grpcjson.Unary(ServiceName, "ListProducts", CatalogServiceServer.ListProducts),
		grpcjson.Unary(ServiceName, "LowStock", CatalogServiceServer.LowStock),
	},
	Metadata: "catalog/v1/catalog",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) ListInventory(ctx context.Context) (*ListInventoryResponse, error) {
	return grpcjson.Invoke[ListInventoryResponse](ctx, c.cc, ServiceName, "ListInventory", &Empty{})
}

func (c *CatalogServiceClient) ListIngredients(ctx context.Context) (*ListIngredientsResponse, error) {
	return grpcjson.Invoke[ListIngredientsResponse](ctx, c.cc, ServiceName, "ListIngredients", &Empty{})
}

func (c *CatalogServiceClient) UpsertItem(ctx context.Context, req *UpsertItemRequest) (*ItemResponse, error) {
	return grpcjson.Invoke[ItemResponse](ctx, c.cc, ServiceName, "UpsertItem", req)
}

func (c *CatalogServiceClient) DeleteItem(ctx context.Context, req *IDRequest) (*Empty, error) {
	return grpcjson.Invoke[Empty](ctx, c.cc, ServiceName, "DeleteItem", req)
}

func (c *CatalogServiceClient) AdjustStock(ctx context.Context, req *AdjustStockRequest) (*ItemResponse, error) {
	return grpcjson.Invoke[ItemResponse](ctx, c.cc, ServiceName, "AdjustStock", req)
}

func (c *CatalogServiceClient) ListRecipes(ctx context.Context) (*ListRecipesResponse, error) {
	return grpcjson.Invoke[ListRecipesResponse](ctx, c.cc, ServiceName, "ListRecipes", &Empty{})
}

func (c *CatalogServiceClient) UpsertRecipe(ctx context.Context, req *UpsertRecipeRequest) (*RecipeResponse, error) {
	return grpcjson.Invoke[RecipeResponse](ctx, c.cc, ServiceName, "UpsertRecipe", req)
}

func (c *CatalogServiceClient) DeleteRecipe(ctx context.Context, req *IDRequest) (*Empty, error) {
	return grpcjson.Invoke[Empty](ctx, c.cc, ServiceName, "DeleteRecipe", req)
}

func (c *CatalogServiceClient) GetCosting(ctx context.Context, req *IDRequest) (*CostingResponse, error) {
	return grpcjson.Invoke[CostingResponse](ctx, c.cc, ServiceName, "GetCosting", req)
}

func (c *CatalogServiceClient) ListCostings(ctx context.Context) (*ListCostingsResponse, error) {
	return grpcjson.Invoke[ListCostingsResponse](ctx, c.cc, ServiceName, "ListCostings", &Empty{})
}

func (c *CatalogServiceClient) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	return grpcjson.Invoke[ListProductsResponse](ctx, c.cc, ServiceName, "ListProducts", &Empty{})
}

func (c *CatalogServiceClient) LowStock(ctx context.Context) (*ListInventoryResponse, error) {
	return grpcjson.Invoke[ListInventoryResponse](ctx, c.cc, ServiceName, "LowStock", &Empty{})
}
