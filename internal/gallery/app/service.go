package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dwikikusuma/bakery-shop/internal/gallery/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type ImageRepo interface {
	List(ctx context.Context) ([]domain.Image, error)
	Get(ctx context.Context, id string) (domain.Image, error)
	Save(ctx context.Context, img domain.Image) error
	Delete(ctx context.Context, id string) error
	// Update applies fn atomically; returns ErrNotFound when the image is missing.
	Update(ctx context.Context, id string, fn func(domain.Image) domain.Image) (domain.Image, error)
}

type LikeRepo interface {
	Get(ctx context.Context, userID string) (domain.Likes, error)
	Update(ctx context.Context, userID string, fn func(domain.Likes) domain.Likes) (domain.Likes, error)
}

type Service struct {
	images ImageRepo
	likes  LikeRepo
	log    *slog.Logger
}

func NewService(images ImageRepo, likes LikeRepo, log *slog.Logger) *Service {
	return &Service{images: images, likes: likes, log: logger.Component(log, "gallery")}
}

func (s *Service) List(ctx context.Context) ([]domain.Image, error) {
	return s.images.List(ctx)
}

func (s *Service) Add(ctx context.Context, img domain.Image) (domain.Image, error) {
	if err := img.Validate(); err != nil {
		return domain.Image{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(img.ID) == "" {
		img.ID = uuid.NewString()
	}
	img.Likes = 0
	if err := s.images.Save(ctx, img); err != nil {
		return domain.Image{}, err
	}
	return img, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.images.Delete(ctx, id)
}

// LikedImages returns the image ids the user has liked.
func (s *Service) LikedImages(ctx context.Context, userID string) ([]string, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	l, err := s.likes.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return l.ImageIDs, nil
}

// ToggleLike flips the user's like on an image and moves the image counter
// accordingly. The two documents are updated in separate transactions.
func (s *Service) ToggleLike(ctx context.Context, userID, imageID string) (domain.Image, bool, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(imageID) == "" {
		return domain.Image{}, false, ErrInvalidInput
	}
	if _, err := s.images.Get(ctx, imageID); err != nil {
		return domain.Image{}, false, err
	}

	var liked bool
	if _, err := s.likes.Update(ctx, userID, func(l domain.Likes) domain.Likes {
		l.UserID = userID
		l, liked = l.Toggle(imageID)
		return l
	}); err != nil {
		return domain.Image{}, false, err
	}

	img, err := s.images.Update(ctx, imageID, func(img domain.Image) domain.Image {
		return img.Like(liked)
	})
	if err != nil {
		s.log.Warn("like recorded but counter not updated", "user_id", userID, "image_id", imageID, "err", err)
		return domain.Image{}, false, err
	}
	return img, liked, nil
}
