// Package firestore backs docstore.Store with Cloud Firestore. Documents are
// stored as native Firestore maps so the console and client SDKs can read them.
package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dwikikusuma/bakery-shop/pkg/docstore"
	"github.com/dwikikusuma/bakery-shop/pkg/logger"
)

type Config struct {
	ProjectID       string
	CredentialsFile string
}

type Store struct {
	client *gcfirestore.Client
	log    *slog.Logger
}

var _ docstore.Store = (*Store)(nil)

func Open(ctx context.Context, cfg Config, log *slog.Logger) (*Store, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &Store{client: client, log: logger.Component(log, "docstore.firestore")}, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return fromSnapshots(snaps)
}

func (s *Store) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return docstore.Document{}, docstore.ErrNotFound
	}
	if err != nil {
		return docstore.Document{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return fromSnapshot(snap)
}

func (s *Store) Upsert(ctx context.Context, collection string, doc docstore.Document) error {
	if doc.ID == "" {
		return docstore.ErrInvalidDoc
	}
	data, err := toMap(doc)
	if err != nil {
		return err
	}
	if _, err := s.client.Collection(collection).Doc(doc.ID).Set(ctx, data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, doc.ID, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fn docstore.UpdateFunc) error {
	ref := s.client.Collection(collection).Doc(id)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *gcfirestore.Transaction) error {
		current := docstore.Document{ID: id}
		exists := true

		snap, err := tx.Get(ref)
		switch {
		case status.Code(err) == codes.NotFound:
			exists = false
		case err != nil:
			return err
		default:
			if current, err = fromSnapshot(snap); err != nil {
				return err
			}
		}

		next, err := fn(current, exists)
		if err != nil {
			return err
		}
		next.ID = id
		data, err := toMap(next)
		if err != nil {
			return err
		}
		return tx.Set(ref, data)
	})
}

func (s *Store) Watch(ctx context.Context, collection string, fn docstore.WatchFunc) (func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	it := s.client.Collection(collection).Snapshots(watchCtx)

	// The first snapshot is the current state; deliver it before returning.
	qs, err := it.Next()
	if err != nil {
		it.Stop()
		cancel()
		return nil, fmt.Errorf("watch %s: %w", collection, err)
	}
	if err := s.deliver(qs, fn); err != nil {
		it.Stop()
		cancel()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer it.Stop()
		for {
			qs, err := it.Next()
			if err != nil {
				if !errors.Is(err, iterator.Done) && watchCtx.Err() == nil {
					s.log.Error("watch stopped", "collection", collection, "err", err)
				}
				return
			}
			if err := s.deliver(qs, fn); err != nil {
				s.log.Warn("watch snapshot dropped", "collection", collection, "err", err)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) deliver(qs *gcfirestore.QuerySnapshot, fn docstore.WatchFunc) error {
	snaps, err := qs.Documents.GetAll()
	if err != nil {
		return err
	}
	docs, err := fromSnapshots(snaps)
	if err != nil {
		return err
	}
	fn(docs)
	return nil
}

func fromSnapshots(snaps []*gcfirestore.DocumentSnapshot) ([]docstore.Document, error) {
	docs := make([]docstore.Document, 0, len(snaps))
	for _, snap := range snaps {
		d, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func fromSnapshot(snap *gcfirestore.DocumentSnapshot) (docstore.Document, error) {
	data, err := json.Marshal(snap.Data())
	if err != nil {
		return docstore.Document{}, fmt.Errorf("marshal %s: %w", snap.Ref.ID, err)
	}
	return docstore.Document{ID: snap.Ref.ID, Data: data}, nil
}

func toMap(doc docstore.Document) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(doc.Data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", docstore.ErrInvalidDoc, doc.ID, err)
	}
	return m, nil
}
