package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	checkoutv1 "github.com/dwikikusuma/bakery-shop/api/checkout/v1"
	cartapp "github.com/dwikikusuma/bakery-shop/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/bakery-shop/internal/cart/grpc"
	"github.com/dwikikusuma/bakery-shop/internal/checkout/app"
	"github.com/dwikikusuma/bakery-shop/internal/checkout/domain"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Quote(ctx context.Context, req *checkoutv1.QuoteRequest) (*checkoutv1.QuoteResponse, error) {
	if req.UserID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	q, err := s.svc.Quote(ctx, req.UserID, domain.DeliveryMethod(req.DeliveryMethod))
	if err != nil {
		return nil, mapErr(err)
	}
	return &checkoutv1.QuoteResponse{Quote: quoteToProto(q)}, nil
}

func quoteToProto(q domain.Quote) checkoutv1.Quote {
	return checkoutv1.Quote{
		Lines:          cartgrpc.LinesToProto(q.Lines),
		DeliveryMethod: string(q.DeliveryMethod),
		Subtotal:       q.Subtotal,
		DeliveryFee:    q.DeliveryFee,
		Total:          q.Total,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, "cart is empty")
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, cartapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Errorf(codes.Internal, "quote failed: %v", err)
}
