package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	reportv1 "github.com/dwikikusuma/bakery-shop/api/report/v1"
	catalogrpc "github.com/dwikikusuma/bakery-shop/internal/catalog/grpc"
	"github.com/dwikikusuma/bakery-shop/internal/report/app"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) Financials(ctx context.Context, _ *reportv1.Empty) (*reportv1.FinancialsResponse, error) {
	f, err := s.svc.Financials(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &reportv1.FinancialsResponse{Financials: reportv1.Financials(f)}, nil
}

func (s *Server) LowStock(ctx context.Context, _ *reportv1.Empty) (*reportv1.LowStockResponse, error) {
	items, err := s.svc.LowStock(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return &reportv1.LowStockResponse{Items: catalogrpc.ItemsToProto(items)}, nil
}

func mapErr(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return status.Error(codes.Internal, "internal error")
}
