package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/dwikikusuma/bakery-shop/internal/settings/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo SettingsRepo
	log  *slog.Logger
}

func NewService(repo SettingsRepo, log *slog.Logger) *Service {
	return &Service{repo: repo, log: logger.Component(log, "settings")}
}

// Get returns the stored settings. On first use the defaults are written
// and returned.
func (s *Service) Get(ctx context.Context) (domain.Settings, error) {
	st, err := s.repo.Get(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return domain.Settings{}, err
	}

	st = domain.Defaults()
	if err := s.repo.Save(ctx, st); err != nil {
		return domain.Settings{}, fmt.Errorf("persist default settings: %w", err)
	}
	s.log.Info("default settings created")
	return st, nil
}

func (s *Service) Save(ctx context.Context, st domain.Settings) (domain.Settings, error) {
	if err := st.Validate(); err != nil {
		return domain.Settings{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return domain.Settings{}, err
	}
	return st, nil
}

// DeliveryFee reads the fee currently configured.
func (s *Service) DeliveryFee(ctx context.Context) (decimal.Decimal, error) {
	st, err := s.Get(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return st.DeliveryFee, nil
}
