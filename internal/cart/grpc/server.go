package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartv1 "github.com/dwikikusuma/bakery-shop/api/cart/v1"
	"github.com/dwikikusuma/bakery-shop/internal/cart/app"
)

type Server struct {
	svc *app.Service
}

var _ cartv1.CartServiceServer = (*Server)(nil)

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.UserID) (*cartv1.CartResponse, error) {
	cart, err := s.svc.GetCart(ctx, req.UserID)
	if err != nil {
		return nil, mapErr(err)
	}
	return cartResponse(cart), nil
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (*cartv1.CartResponse, error) {
	cart, err := s.svc.AddItem(ctx, req.UserID, itemFromProto(req.Item))
	if err != nil {
		return nil, mapErr(err)
	}
	return cartResponse(cart), nil
}

func (s *Server) RemoveItem(ctx context.Context, req *cartv1.RemoveItemRequest) (*cartv1.CartResponse, error) {
	cart, err := s.svc.RemoveItem(ctx, req.UserID, req.Key)
	if err != nil {
		return nil, mapErr(err)
	}
	return cartResponse(cart), nil
}

func (s *Server) SetItemQuantity(ctx context.Context, req *cartv1.SetItemQuantityRequest) (*cartv1.CartResponse, error) {
	cart, err := s.svc.SetItemQuantity(ctx, req.UserID, req.Key, req.Quantity)
	if err != nil {
		return nil, mapErr(err)
	}
	return cartResponse(cart), nil
}

func (s *Server) ReplaceCart(ctx context.Context, req *cartv1.ReplaceRequest) (*cartv1.CartResponse, error) {
	cart, err := s.svc.Replace(ctx, req.UserID, LinesFromProto(req.Lines))
	if err != nil {
		return nil, mapErr(err)
	}
	return cartResponse(cart), nil
}

func (s *Server) ClearCart(ctx context.Context, req *cartv1.UserID) (*cartv1.Empty, error) {
	if err := s.svc.ClearCart(ctx, req.UserID); err != nil {
		return nil, mapErr(err)
	}
	return &cartv1.Empty{}, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
