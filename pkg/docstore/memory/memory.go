// Package memory is an in-process docstore.Store used by tests and local runs.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
)

type watcher struct {
	id int
	fn docstore.WatchFunc
}

// Store keeps documents in memory. Watch callbacks run synchronously, in
// mutation order, and must not write back to the store.
type Store struct {
	mu          sync.Mutex
	notifyMu    sync.Mutex
	collections map[string]map[string][]byte
	watchers    map[string][]watcher
	nextWatcher int
}

var _ docstore.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		collections: make(map[string]map[string][]byte),
		watchers:    make(map[string][]watcher),
	}
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(collection), nil
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return docstore.Document{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.collections[collection][id]
	if !ok {
		return docstore.Document{}, docstore.ErrNotFound
	}
	return docstore.Document{ID: id, Data: slices.Clone(data)}, nil
}

func (s *Store) Upsert(ctx context.Context, collection string, doc docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if doc.ID == "" {
		return docstore.ErrInvalidDoc
	}

	s.mu.Lock()
	s.putLocked(collection, doc)
	s.publishLocked(collection)
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	if _, ok := s.collections[collection][id]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.collections[collection], id)
	s.publishLocked(collection)
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fn docstore.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	current := docstore.Document{ID: id}
	data, exists := s.collections[collection][id]
	if exists {
		current.Data = slices.Clone(data)
	}

	next, err := fn(current, exists)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	next.ID = id
	s.putLocked(collection, next)
	s.publishLocked(collection)
	return nil
}

func (s *Store) Watch(ctx context.Context, collection string, fn docstore.WatchFunc) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nextWatcher++
	id := s.nextWatcher
	s.watchers[collection] = append(s.watchers[collection], watcher{id: id, fn: fn})
	docs := s.snapshotLocked(collection)
	s.notifyMu.Lock()
	s.mu.Unlock()
	fn(docs)
	s.notifyMu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.watchers[collection] = slices.DeleteFunc(s.watchers[collection], func(w watcher) bool { return w.id == id })
		})
	}

	go func() {
		<-ctx.Done()
		stop()
	}()

	return stop, nil
}

func (s *Store) Close() error { return nil }

func (s *Store) putLocked(collection string, doc docstore.Document) {
	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string][]byte)
		s.collections[collection] = c
	}
	c[doc.ID] = slices.Clone(doc.Data)
}

func (s *Store) snapshotLocked(collection string) []docstore.Document {
	c := s.collections[collection]
	docs := make([]docstore.Document, 0, len(c))
	for id, data := range c {
		docs = append(docs, docstore.Document{ID: id, Data: slices.Clone(data)})
	}
	slices.SortFunc(docs, func(a, b docstore.Document) int { return strings.Compare(a.ID, b.ID) })
	return docs
}

// publishLocked must be called with s.mu held; it releases s.mu before
// running the watchers so they may read the store.
func (s *Store) publishLocked(collection string) {
	ws := slices.Clone(s.watchers[collection])
	if len(ws) == 0 {
		s.mu.Unlock()
		return
	}
	docs := s.snapshotLocked(collection)
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, w := range ws {
		w.fn(docs)
	}
}
