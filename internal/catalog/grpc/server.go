package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	"github.com/dwikikusuma/bakery-shop/internal/catalog/app"
)

type Server struct {
	svc *app.Service
}

var _ catalogv1.CatalogServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListInventory(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListInventoryResponse, error) {
	items, err := s.svc.ListInventory(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ListInventoryResponse{Items: ItemsToProto(items)}, nil
}

func (s *Server) ListIngredients(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListIngredientsResponse, error) {
	ings, err := s.svc.ListIngredients(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]catalogv1.Ingredient, 0, len(ings))
	for _, i := range ings {
		out = append(out, IngredientToProto(i))
	}
	return &catalogv1.ListIngredientsResponse{Ingredients: out}, nil
}

func (s *Server) UpsertItem(ctx context.Context, req *catalogv1.UpsertItemRequest) (*catalogv1.ItemResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}
	item, err := s.svc.UpsertItem(ctx, itemFromProto(req.Item))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ItemResponse{Item: ItemToProto(item)}, nil
}

func (s *Server) DeleteItem(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.Empty, error) {
	if err := s.svc.DeleteItem(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.Empty{}, nil
}

func (s *Server) AdjustStock(ctx context.Context, req *catalogv1.AdjustStockRequest) (*catalogv1.ItemResponse, error) {
	item, err := s.svc.AdjustStock(ctx, req.ID, req.Delta)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ItemResponse{Item: ItemToProto(item)}, nil
}

func (s *Server) ListRecipes(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListRecipesResponse, error) {
	recipes, err := s.svc.ListRecipes(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]catalogv1.Recipe, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, recipeToProto(r))
	}
	return &catalogv1.ListRecipesResponse{Recipes: out}, nil
}

func (s *Server) UpsertRecipe(ctx context.Context, req *catalogv1.UpsertRecipeRequest) (*catalogv1.RecipeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "missing body")
	}
	r, err := s.svc.UpsertRecipe(ctx, recipeFromProto(req.Recipe))
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.RecipeResponse{Recipe: recipeToProto(r)}, nil
}

func (s *Server) DeleteRecipe(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.Empty, error) {
	if err := s.svc.DeleteRecipe(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.Empty{}, nil
}

func (s *Server) GetCosting(ctx context.Context, req *catalogv1.IDRequest) (*catalogv1.CostingResponse, error) {
	c, err := s.svc.GetCosting(ctx, req.ID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.CostingResponse{Costing: costingToProto(c)}, nil
}

func (s *Server) ListCostings(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListCostingsResponse, error) {
	cs, err := s.svc.ListCostings(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]catalogv1.Costing, 0, len(cs))
	for _, c := range cs {
		out = append(out, costingToProto(c))
	}
	return &catalogv1.ListCostingsResponse{Costings: out}, nil
}

func (s *Server) ListProducts(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListProductsResponse, error) {
	ps, err := s.svc.ListProducts(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]catalogv1.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, productToProto(p))
	}
	return &catalogv1.ListProductsResponse{Products: out}, nil
}

func (s *Server) LowStock(ctx context.Context, _ *catalogv1.Empty) (*catalogv1.ListInventoryResponse, error) {
	items, err := s.svc.LowStock(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &catalogv1.ListInventoryResponse{Items: ItemsToProto(items)}, nil
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	if errors.Is(err, app.ErrNotFound) {
		return status.Error(codes.NotFound, err.Error())
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
