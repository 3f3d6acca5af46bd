package app

import (
	"context"

	"github.com/dwikikusuma/bakery-shop/internal/settings/domain"
)

type SettingsRepo interface {
	// Get returns ErrNotFound when no settings were ever saved.
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}
