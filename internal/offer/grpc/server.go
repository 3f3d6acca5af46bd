package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	offerv1 "github.com/dwikikusuma/bakery-shop/api/offer/v1"
	"github.com/dwikikusuma/bakery-shop/internal/offer/app"
	"github.com/dwikikusuma/bakery-shop/internal/offer/domain"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListOffers(ctx context.Context, _ *offerv1.Empty) (*offerv1.ListOffersResponse, error) {
	offers, err := s.svc.List(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]offerv1.Offer, 0, len(offers))
	for _, o := range offers {
		out = append(out, offerv1.Offer(o))
	}
	return &offerv1.ListOffersResponse{Offers: out}, nil
}

func (s *Server) SaveOffer(ctx context.Context, req *offerv1.OfferMessage) (*offerv1.OfferMessage, error) {
	o, err := s.svc.Save(ctx, domain.Offer(req.Offer))
	if err != nil {
		return nil, mapErr(err)
	}
	return &offerv1.OfferMessage{Offer: offerv1.Offer(o)}, nil
}

func (s *Server) DeleteOffer(ctx context.Context, req *offerv1.IDRequest) (*offerv1.Empty, error) {
	if err := s.svc.Delete(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &offerv1.Empty{}, nil
}

func mapErr(err error) error {
	if errors.Is(err, app.ErrInvalidInput) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}
