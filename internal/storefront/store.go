package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/bakery-shop/pkg/config"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore/firestore"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore/memory"
	pgstore "github.com/dwikikusuma/bakery-shop/pkg/docstore/postgres"
	"github.com/dwikikusuma/bakery-shop/pkg/postgres"
)

// OpenStore builds the document store selected by cfg.StoreDriver.
func OpenStore(ctx context.Context, cfg config.Config, log *slog.Logger) (docstore.Store, error) {
	switch cfg.StoreDriver {
	case "", "memory":
		log.Warn("using in-memory store; data is lost on exit")
		return memory.New(), nil

	case "postgres":
		pc := postgres.Config{
			Host:    cfg.Postgres.Host,
			Port:    cfg.Postgres.Port,
			User:    cfg.Postgres.User,
			Pass:    cfg.Postgres.Pass,
			DB:      cfg.Postgres.DB,
			SSLMode: cfg.Postgres.SSLMode,
		}
		db, err := postgres.Open(pc)
		if err != nil {
			return nil, err
		}
		s := pgstore.New(db, pc.DSN(), log)
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil

	case "firestore":
		return firestore.Open(ctx, firestore.Config{
			ProjectID:       cfg.Firestore.ProjectID,
			CredentialsFile: cfg.Firestore.CredentialsFile,
		}, log)

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
