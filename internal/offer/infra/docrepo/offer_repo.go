package docrepo

import (
	"context"

	"github.com/dwikikusuma/bakery-shop/internal/offer/domain"
	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

const OfferCollection = "offers"

type OfferRepo struct {
	c *docstore.Collection[domain.Offer]
}

func NewOfferRepo(store docstore.Store) *OfferRepo {
	return &OfferRepo{c: docstore.NewCollection(store, OfferCollection, func(o domain.Offer) string { return o.ID })}
}

func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) { return r.c.List(ctx) }

func (r *OfferRepo) Save(ctx context.Context, o domain.Offer) error { return r.c.Put(ctx, o) }

func (r *OfferRepo) Delete(ctx context.Context, id string) error { return r.c.Delete(ctx, id) }
