// Package docstore is the document persistence contract shared by every
// bounded context: named collections of JSON records keyed by id, with live
// watches and a transactional read-modify-write.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("document not found")
	ErrInvalidDoc = errors.New("invalid document")
)

type Document struct {
	ID   string
	Data json.RawMessage
}

// UpdateFunc receives the current document (zero value and exists=false when
// missing) and returns the replacement.
type UpdateFunc func(current Document, exists bool) (Document, error)

// WatchFunc receives the full collection every time it changes.
type WatchFunc func(docs []Document)

type Store interface {
	List(ctx context.Context, collection string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	// Upsert replaces the whole record stored under doc.ID.
	Upsert(ctx context.Context, collection string, doc Document) error
	// Delete is idempotent.
	Delete(ctx context.Context, collection, id string) error
	// Update runs fn and writes its result atomically with respect to other
	// Update calls on the same document.
	Update(ctx context.Context, collection, id string, fn UpdateFunc) error
	// Watch delivers the current collection immediately and again after every
	// change until stop is called or ctx ends.
	Watch(ctx context.Context, collection string, fn WatchFunc) (stop func(), err error)
	Close() error
}

func Encode(id string, v any) (Document, error) {
	if id == "" {
		return Document{}, fmt.Errorf("%w: empty id", ErrInvalidDoc)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("encode %s: %w", id, err)
	}
	return Document{ID: id, Data: data}, nil
}

func Decode[T any](doc Document) (T, error) {
	var v T
	if err := json.Unmarshal(doc.Data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", doc.ID, err)
	}
	return v, nil
}

func DecodeAll[T any](docs []Document) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := Decode[T](d)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
