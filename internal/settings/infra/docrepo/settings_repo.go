package docrepo

import (
	"context"
	"errors"

	"github.com/dwikikusuma/bakery-shop/internal/settings/app"
	"github.com/dwikikusuma/bakery-shop/internal/settings/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

const (
	Collection = "appData"
	DocumentID = "settings"
)

type SettingsRepo struct {
	c *docstore.Collection[domain.Settings]
}

var _ app.SettingsRepo = (*SettingsRepo)(nil)

func NewSettingsRepo(store docstore.Store) *SettingsRepo {
	return &SettingsRepo{c: docstore.NewCollection(store, Collection, func(domain.Settings) string { return DocumentID })}
}

func (r *SettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	st, err := r.c.Get(ctx, DocumentID)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.Settings{}, app.ErrNotFound
	}
	return st, err
}

func (r *SettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	return r.c.Put(ctx, s)
}
