package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

type stock struct {
	Quantity float64 `json:"quantity"`
}

// openTestStore needs a disposable database; set POSTGRES_DSN to run.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s := New(db, dsn, logger.Discard())
	ctx := context.Background()
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM documents WHERE collection LIKE 'test_%'`); err != nil {
		t.Fatalf("reset: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreIntegration(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	const coll = "test_inventory"

	t.Run("missing -> ErrNotFound", func(t *testing.T) {
		if _, err := s.Get(ctx, coll, "nope"); !errors.Is(err, docstore.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("upsert then get", func(t *testing.T) {
		doc, _ := docstore.Encode("b1", stock{Quantity: 5})
		if err := s.Upsert(ctx, coll, doc); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		got, err := s.Get(ctx, coll, "b1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		v, _ := docstore.Decode[stock](got)
		if v.Quantity != 5 {
			t.Fatalf("got %v", v.Quantity)
		}
	})

	t.Run("update read-modify-write", func(t *testing.T) {
		err := s.Update(ctx, coll, "b1", func(cur docstore.Document, exists bool) (docstore.Document, error) {
			if !exists {
				t.Fatal("expected existing document")
			}
			v, err := docstore.Decode[stock](cur)
			if err != nil {
				return docstore.Document{}, err
			}
			v.Quantity -= 2
			return docstore.Encode(cur.ID, v)
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		got, _ := s.Get(ctx, coll, "b1")
		v, _ := docstore.Decode[stock](got)
		if v.Quantity != 3 {
			t.Fatalf("got %v", v.Quantity)
		}
	})

	t.Run("watch sees writes", func(t *testing.T) {
		seen := make(chan int, 8)
		stop, err := s.Watch(ctx, coll, func(docs []docstore.Document) { seen <- len(docs) })
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
		defer stop()
		<-seen

		doc, _ := docstore.Encode("b2", stock{Quantity: 1})
		if err := s.Upsert(ctx, coll, doc); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		select {
		case n := <-seen:
			if n != 2 {
				t.Fatalf("expected 2 docs, got %d", n)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("no notification")
		}
	})
}
