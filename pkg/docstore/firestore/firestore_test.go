package firestore

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

func TestToMap(t *testing.T) {
	t.Run("object -> map", func(t *testing.T) {
		m, err := toMap(docstore.Document{ID: "b1", Data: []byte(`{"name":"Vainilla","quantity":5}`)})
		if err != nil {
			t.Fatalf("toMap: %v", err)
		}
		if m["name"] != "Vainilla" || m["quantity"] != float64(5) {
			t.Fatalf("unexpected map: %v", m)
		}
	})

	t.Run("non-object -> ErrInvalidDoc", func(t *testing.T) {
		_, err := toMap(docstore.Document{ID: "b1", Data: []byte(`[1,2]`)})
		if !errors.Is(err, docstore.ErrInvalidDoc) {
			t.Fatalf("expected ErrInvalidDoc, got %v", err)
		}
	})
}

// Runs against the Firestore emulator only.
func TestStoreEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, Config{ProjectID: "bakery-test"}, logger.Discard())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	coll := "test_" + uuid.NewString()

	t.Run("missing -> ErrNotFound", func(t *testing.T) {
		if _, err := s.Get(ctx, coll, "nope"); !errors.Is(err, docstore.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update creates then increments", func(t *testing.T) {
		type counter struct {
			N float64 `json:"n"`
		}
		inc := func(cur docstore.Document, exists bool) (docstore.Document, error) {
			var c counter
			if exists {
				var err error
				if c, err = docstore.Decode[counter](cur); err != nil {
					return docstore.Document{}, err
				}
			}
			c.N++
			return docstore.Encode(cur.ID, c)
		}
		for range 2 {
			if err := s.Update(ctx, coll, "c1", inc); err != nil {
				t.Fatalf("update: %v", err)
			}
		}
		doc, err := s.Get(ctx, coll, "c1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		got, _ := docstore.Decode[counter](doc)
		if got.N != 2 {
			t.Fatalf("expected 2, got %v", got.N)
		}
	})
}
