package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	galleryv1 "github.com/dwikikusuma/bakery-shop/api/gallery/v1"
	"github.com/dwikikusuma/bakery-shop/internal/gallery/app"
	"github.com/dwikikusuma/bakery-shop/internal/gallery/domain"
)

type Server struct {
	svc *app.Service
}

func NewServer(svc *app.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) ListImages(ctx context.Context, _ *galleryv1.Empty) (*galleryv1.ListImagesResponse, error) {
	imgs, err := s.svc.List(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]galleryv1.Image, 0, len(imgs))
	for _, img := range imgs {
		out = append(out, galleryv1.Image(img))
	}
	return &galleryv1.ListImagesResponse{Images: out}, nil
}

func (s *Server) AddImage(ctx context.Context, req *galleryv1.ImageMessage) (*galleryv1.ImageMessage, error) {
	img, err := s.svc.Add(ctx, domain.Image(req.Image))
	if err != nil {
		return nil, mapErr(err)
	}
	return &galleryv1.ImageMessage{Image: galleryv1.Image(img)}, nil
}

func (s *Server) DeleteImage(ctx context.Context, req *galleryv1.IDRequest) (*galleryv1.Empty, error) {
	if err := s.svc.Delete(ctx, req.ID); err != nil {
		return nil, mapErr(err)
	}
	return &galleryv1.Empty{}, nil
}

func (s *Server) ToggleLike(ctx context.Context, req *galleryv1.ToggleLikeRequest) (*galleryv1.ToggleLikeResponse, error) {
	img, liked, err := s.svc.ToggleLike(ctx, req.UserID, req.ImageID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &galleryv1.ToggleLikeResponse{Image: galleryv1.Image(img), Liked: liked}, nil
}

func (s *Server) LikedImages(ctx context.Context, req *galleryv1.UserRequest) (*galleryv1.LikedImagesResponse, error) {
	ids, err := s.svc.LikedImages(ctx, req.UserID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &galleryv1.LikedImagesResponse{ImageIDs: ids}, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
