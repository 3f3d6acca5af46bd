package docrepo

import (
	"context"
	"errors"

	"github.com/dwikikusuma/bakery-shop/internal/gallery/app"
	"github.com/dwikikusuma/bakery-shop/internal/gallery/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

const (
	ImageCollection = "gallery"
	LikeCollection  = "galleryLikes"
)

type ImageRepo struct {
	c *docstore.Collection[domain.Image]
}

func NewImageRepo(store docstore.Store) *ImageRepo {
	return &ImageRepo{c: docstore.NewCollection(store, ImageCollection, func(i domain.Image) string { return i.ID })}
}

func (r *ImageRepo) List(ctx context.Context) ([]domain.Image, error) { return r.c.List(ctx) }

func (r *ImageRepo) Get(ctx context.Context, id string) (domain.Image, error) {
	img, err := r.c.Get(ctx, id)
	return img, mapErr(err)
}

func (r *ImageRepo) Save(ctx context.Context, img domain.Image) error { return r.c.Put(ctx, img) }

func (r *ImageRepo) Delete(ctx context.Context, id string) error { return r.c.Delete(ctx, id) }

func (r *ImageRepo) Update(ctx context.Context, id string, fn func(domain.Image) domain.Image) (domain.Image, error) {
	img, err := r.c.Update(ctx, id, func(cur domain.Image, exists bool) (domain.Image, error) {
		if !exists {
			return domain.Image{}, app.ErrNotFound
		}
		return fn(cur), nil
	})
	return img, mapErr(err)
}

type LikeRepo struct {
	c *docstore.Collection[domain.Likes]
}

func NewLikeRepo(store docstore.Store) *LikeRepo {
	return &LikeRepo{c: docstore.NewCollection(store, LikeCollection, func(l domain.Likes) string { return l.UserID })}
}

func (r *LikeRepo) Get(ctx context.Context, userID string) (domain.Likes, error) {
	l, err := r.c.Get(ctx, userID)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.Likes{UserID: userID}, nil
	}
	return l, err
}

func (r *LikeRepo) Update(ctx context.Context, userID string, fn func(domain.Likes) domain.Likes) (domain.Likes, error) {
	return r.c.Update(ctx, userID, func(cur domain.Likes, _ bool) (domain.Likes, error) {
		return fn(cur), nil
	})
}

func mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return app.ErrNotFound
	}
	return err
}
