package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dwikikusuma/bakery-shop/internal/offer/domain"
)

var ErrInvalidInput = errors.New("invalid input")

type OfferRepo interface {
	List(ctx context.Context) ([]domain.Offer, error)
	Save(ctx context.Context, o domain.Offer) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo OfferRepo
}

func NewService(repo OfferRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Save(ctx context.Context, o domain.Offer) (domain.Offer, error) {
	o.Title = strings.TrimSpace(o.Title)
	if err := o.Validate(); err != nil {
		return domain.Offer{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(o.ID) == "" {
		o.ID = uuid.NewString()
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return domain.Offer{}, err
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
