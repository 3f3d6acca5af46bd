package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/bakery-shop/internal/offer/domain"
)

type fakeRepo struct{ saved []domain.Offer }

func (f *fakeRepo) List(context.Context) ([]domain.Offer, error) { return f.saved, nil }
func (f *fakeRepo) Save(_ context.Context, o domain.Offer) error {
	f.saved = append(f.saved, o)
	return nil
}
func (f *fakeRepo) Delete(context.Context, string) error { return nil }

func TestSaveOffer(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	t.Run("blank title -> invalid", func(t *testing.T) {
		if _, err := svc.Save(ctx, domain.Offer{Title: "  "}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("id assigned", func(t *testing.T) {
		o, err := svc.Save(ctx, domain.Offer{Title: "2x1 en cupcakes"})
		if err != nil || o.ID == "" {
			t.Fatalf("got %+v, %v", o, err)
		}
		if len(repo.saved) != 1 {
			t.Fatalf("expected 1 saved, got %d", len(repo.saved))
		}
	})

	t.Run("blank delete id -> invalid", func(t *testing.T) {
		if err := svc.Delete(ctx, ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}
