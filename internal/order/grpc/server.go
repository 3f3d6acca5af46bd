package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderv1 "github.com/dwikikusuma/bakery-shop/api/order/v1"
	cartapp "github.com/dwikikusuma/bakery-shop/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/bakery-shop/internal/cart/grpc"
	checkoutapp "github.com/dwikikusuma/bakery-shop/internal/checkout/app"
	"github.com/dwikikusuma/bakery-shop/internal/order/app"
	"github.com/dwikikusuma/bakery-shop/internal/order/domain"
)

type Server struct {
	svc *app.Service
}

var _ orderv1.OrderServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) PlaceOrder(ctx context.Context, req *orderv1.PlaceOrderRequest) (*orderv1.OrderResponse, error) {
	order, err := s.svc.PlaceOrder(ctx, placeRequestFromProto(req))
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.OrderResponse{Order: orderToProto(order)}, nil
}

func (s *Server) UpdateStatus(ctx context.Context, req *orderv1.UpdateStatusRequest) (*orderv1.OrderResponse, error) {
	order, err := s.svc.UpdateStatus(ctx, req.OrderID, domain.Status(req.Status), req.EstimatedTime)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.OrderResponse{Order: orderToProto(order)}, nil
}

func (s *Server) GetOrder(ctx context.Context, req *orderv1.GetOrderRequest) (*orderv1.OrderResponse, error) {
	order, err := s.svc.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.OrderResponse{Order: orderToProto(order)}, nil
}

func (s *Server) ListOrders(ctx context.Context, req *orderv1.ListOrdersRequest) (*orderv1.ListOrdersResponse, error) {
	orders, err := s.svc.ListOrders(ctx, req.UserID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.ListOrdersResponse{Orders: ordersToProto(orders)}, nil
}

func (s *Server) Board(ctx context.Context, _ *orderv1.Empty) (*orderv1.BoardResponse, error) {
	board, err := s.svc.Board(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.BoardResponse{Board: boardToProto(board)}, nil
}

func (s *Server) Reorder(ctx context.Context, req *orderv1.ReorderRequest) (*orderv1.ReorderResponse, error) {
	c, err := s.svc.Reorder(ctx, req.UserID, req.OrderID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &orderv1.ReorderResponse{Cart: cartgrpc.CartToProto(c)}, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound), errors.Is(err, cartapp.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrETARequired):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
