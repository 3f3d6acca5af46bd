package docstore

import (
	"context"
	"log/slog"
)

// Collection is a typed view over one named collection.
type Collection[T any] struct {
	store Store
	name  string
	id    func(T) string
}

func NewCollection[T any](store Store, name string, id func(T) string) *Collection[T] {
	return &Collection[T]{store: store, name: name, id: id}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	docs, err := c.store.List(ctx, c.name)
	if err != nil {
		return nil, err
	}
	return DecodeAll[T](docs)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](doc)
}

func (c *Collection[T]) Put(ctx context.Context, v T) error {
	doc, err := Encode(c.id(v), v)
	if err != nil {
		return err
	}
	return c.store.Upsert(ctx, c.name, doc)
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, c.name, id)
}

// Update runs fn inside the store's read-modify-write. fn receives the zero
// value and false when the document does not exist yet.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(cur T, exists bool) (T, error)) (T, error) {
	var out T
	err := c.store.Update(ctx, c.name, id, func(doc Document, exists bool) (Document, error) {
		var cur T
		if exists {
			var err error
			if cur, err = Decode[T](doc); err != nil {
				return Document{}, err
			}
		}
		next, err := fn(cur, exists)
		if err != nil {
			return Document{}, err
		}
		out = next
		return Encode(id, next)
	})
	return out, err
}

// Watch decodes every snapshot. Documents that fail to decode are logged and
// left out rather than stalling the watch.
func (c *Collection[T]) Watch(ctx context.Context, log *slog.Logger, fn func([]T)) (func(), error) {
	return c.store.Watch(ctx, c.name, func(docs []Document) {
		out := make([]T, 0, len(docs))
		for _, d := range docs {
			v, err := Decode[T](d)
			if err != nil {
				log.Warn("skipping undecodable document", slog.String("collection", c.name), slog.String("id", d.ID), slog.Any("err", err))
				continue
			}
			out = append(out, v)
		}
		fn(out)
	})
}
