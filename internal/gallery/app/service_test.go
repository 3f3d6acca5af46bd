package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dwikikusuma/bakery-shop/internal/gallery/app"
	"github.com/dwikikusuma/bakery-shop/internal/gallery/domain"
	"github.com/dwikikusuma/bakery-shop/internal/gallery/infra/docrepo"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore/memory"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })
	return app.NewService(docrepo.NewImageRepo(store), docrepo.NewLikeRepo(store), logger.Discard())
}

func TestGallery(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	img, err := svc.Add(ctx, domain.Image{ImageURL: "https://img/1.jpg", Caption: "Pastel de bodas", Likes: 40})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	t.Run("add resets likes", func(t *testing.T) {
		if img.Likes != 0 || img.ID == "" {
			t.Fatalf("unexpected image: %+v", img)
		}
	})

	t.Run("missing url -> invalid", func(t *testing.T) {
		if _, err := svc.Add(ctx, domain.Image{}); !errors.Is(err, app.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("toggle like twice -> back to zero", func(t *testing.T) {
		got, liked, err := svc.ToggleLike(ctx, "u1", img.ID)
		if err != nil || !liked || got.Likes != 1 {
			t.Fatalf("like: %+v liked=%v err=%v", got, liked, err)
		}
		ids, _ := svc.LikedImages(ctx, "u1")
		if len(ids) != 1 || ids[0] != img.ID {
			t.Fatalf("liked images: %v", ids)
		}

		got, liked, err = svc.ToggleLike(ctx, "u1", img.ID)
		if err != nil || liked || got.Likes != 0 {
			t.Fatalf("unlike: %+v liked=%v err=%v", got, liked, err)
		}
	})

	t.Run("unknown image -> not found", func(t *testing.T) {
		if _, _, err := svc.ToggleLike(ctx, "u1", "nope"); !errors.Is(err, app.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("concurrent likes from distinct users", func(t *testing.T) {
		const n = 30
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, _, err := svc.ToggleLike(ctx, "user-"+string(rune('A'+i)), img.ID); err != nil {
					t.Errorf("toggle: %v", err)
				}
			}(i)
		}
		wg.Wait()

		imgs, _ := svc.List(ctx)
		if len(imgs) != 1 || imgs[0].Likes != n {
			t.Fatalf("expected %d likes, got %+v", n, imgs)
		}
	})
}
