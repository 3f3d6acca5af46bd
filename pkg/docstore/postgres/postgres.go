// Package postgres stores documents as JSONB rows in a single table and
// uses LISTEN/NOTIFY to drive watches.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

const channel = "docstore"

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	id         TEXT NOT NULL,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
)`

type Store struct {
	db  *sql.DB
	dsn string
	log *slog.Logger
}

var _ docstore.Store = (*Store)(nil)

// New wraps an open pool. dsn is used for the dedicated LISTEN connections.
func New(db *sql.DB, dsn string, log *slog.Logger) *Store {
	return &Store{db: db, dsn: dsn, log: logger.Component(log, "docstore.postgres")}
}

func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate documents: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, data FROM documents WHERE collection = $1 ORDER BY id`, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []docstore.Document
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, docstore.Document{ID: id, Data: data})
	}
	return docs, rows.Err()
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = $1 AND id = $2`, collection, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return docstore.Document{}, docstore.ErrNotFound
	}
	if err != nil {
		return docstore.Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return docstore.Document{ID: id, Data: data}, nil
}

func (s *Store) Upsert(ctx context.Context, collection string, doc docstore.Document) error {
	if doc.ID == "" {
		return docstore.ErrInvalidDoc
	}
	return s.inTx(ctx, collection, func(tx *sql.Tx) error {
		return put(ctx, tx, collection, doc)
	})
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	return s.inTx(ctx, collection, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
		return err
	})
}

func (s *Store) Update(ctx context.Context, collection, id string, fn docstore.UpdateFunc) error {
	return s.inTx(ctx, collection, func(tx *sql.Tx) error {
		var data []byte
		err := tx.QueryRowContext(ctx,
			`SELECT data FROM documents WHERE collection = $1 AND id = $2 FOR UPDATE`, collection, id).Scan(&data)
		current := docstore.Document{ID: id, Data: data}
		exists := true
		if errors.Is(err, sql.ErrNoRows) {
			exists = false
		} else if err != nil {
			return err
		}

		next, err := fn(current, exists)
		if err != nil {
			return err
		}
		next.ID = id
		return put(ctx, tx, collection, next)
	})
}

// Watch holds a dedicated connection listening on the notify channel and
// re-lists the collection whenever a write to it is announced.
func (s *Store) Watch(ctx context.Context, collection string, fn docstore.WatchFunc) (func(), error) {
	conn, err := pgx.Connect(ctx, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("watch connect: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("listen: %w", err)
	}

	docs, err := s.List(ctx, collection)
	if err != nil {
		_ = conn.Close(ctx)
		return nil, err
	}
	fn(docs)

	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer func() {
			closeCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
			defer c()
			_ = conn.Close(closeCtx)
		}()

		for {
			n, err := conn.WaitForNotification(watchCtx)
			if err != nil {
				if watchCtx.Err() == nil {
					s.log.Error("watch stopped", "collection", collection, "err", err)
				}
				return
			}
			if n.Payload != collection {
				continue
			}
			docs, err := s.List(watchCtx, collection)
			if err != nil {
				s.log.Warn("watch refresh failed", "collection", collection, "err", err)
				continue
			}
			fn(docs)
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) inTx(ctx context.Context, collection string, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, channel, collection); err != nil {
		return fmt.Errorf("notify %s: %w", collection, err)
	}
	return tx.Commit()
}

func put(ctx context.Context, tx *sql.Tx, collection string, doc docstore.Document) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		collection, doc.ID, string(doc.Data))
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, doc.ID, err)
	}
	return nil
}
