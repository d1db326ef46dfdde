// Package firestoredb adapts Cloud Firestore to the store interface used
// by the repositories. Production deployments use this adapter; local
// development uses the memory adapter instead.
package firestoredb

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pitlane-backend-go/internal/config"
	"pitlane-backend-go/internal/store"
)

// Store wraps a Firestore client behind the store interface.
type Store struct {
	client *firestore.Client
}

// New initializes the Firebase Admin SDK and returns the Firestore-backed
// store. Credentials come from a service account file, a base64-encoded
// service account JSON, or Application Default Credentials, in that order
// of preference.
func New(ctx context.Context, cfg *config.Config) (*Store, error) {
	var opts []option.ClientOption
	if cfg.GoogleApplicationCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleApplicationCredentials))
	} else if cfg.FirebaseServiceAccountJSONBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	}

	var firebaseCfg *firebase.Config
	if cfg.FirebaseProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}
	return &Store{client: client}, nil
}

// Collection addresses a top-level collection.
func (s *Store) Collection(name string) store.Collection {
	return &fsCollection{ref: s.client.Collection(name)}
}

// Batch returns a WriteBatch of queued deletes.
func (s *Store) Batch() store.WriteBatch {
	return store.NewDeleteBatch()
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

type fsCollection struct {
	ref *firestore.CollectionRef
}

func (c *fsCollection) Doc(id string) store.Doc {
	return &fsDoc{ref: c.ref.Doc(id)}
}

func (c *fsCollection) Add(ctx context.Context, data map[string]any) (string, error) {
	docRef, _, err := c.ref.Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to add document to '%s': %w", c.ref.Path, err)
	}
	return docRef.ID, nil
}

func (c *fsCollection) Where(field, op string, value any) store.Query {
	return &fsQuery{q: c.ref.Where(field, op, value)}
}

func (c *fsCollection) OrderBy(field string, dir store.Direction) store.Query {
	return &fsQuery{q: c.ref.OrderBy(field, toFirestoreDir(dir))}
}

func (c *fsCollection) Documents(ctx context.Context) ([]store.Document, error) {
	return runQuery(ctx, c.ref.Query)
}

type fsQuery struct {
	q firestore.Query
}

func (q *fsQuery) Where(field, op string, value any) store.Query {
	return &fsQuery{q: q.q.Where(field, op, value)}
}

func (q *fsQuery) OrderBy(field string, dir store.Direction) store.Query {
	return &fsQuery{q: q.q.OrderBy(field, toFirestoreDir(dir))}
}

func (q *fsQuery) Documents(ctx context.Context) ([]store.Document, error) {
	return runQuery(ctx, q.q)
}

func runQuery(ctx context.Context, q firestore.Query) ([]store.Document, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []store.Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents: %w", err)
		}
		out = append(out, fsDocument{snap: snap})
	}
	return out, nil
}

type fsDoc struct {
	ref *firestore.DocumentRef
}

func (d *fsDoc) ID() string { return d.ref.ID }

func (d *fsDoc) Get(ctx context.Context) (store.Document, error) {
	snap, err := d.ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("%s: %w", d.ref.Path, store.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get document '%s': %w", d.ref.Path, err)
	}
	return fsDocument{snap: snap}, nil
}

func (d *fsDoc) Set(ctx context.Context, data map[string]any) error {
	if _, err := d.ref.Set(ctx, data); err != nil {
		return fmt.Errorf("failed to set document '%s': %w", d.ref.Path, err)
	}
	return nil
}

func (d *fsDoc) Update(ctx context.Context, data map[string]any) error {
	// Field paths are sorted so the update payload is deterministic.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	updates := make([]firestore.Update, 0, len(keys))
	for _, k := range keys {
		updates = append(updates, firestore.Update{Path: k, Value: data[k]})
	}
	if _, err := d.ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("%s: %w", d.ref.Path, store.ErrNotFound)
		}
		return fmt.Errorf("failed to update document '%s': %w", d.ref.Path, err)
	}
	return nil
}

func (d *fsDoc) Delete(ctx context.Context) error {
	if _, err := d.ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete document '%s': %w", d.ref.Path, err)
	}
	return nil
}

func (d *fsDoc) Collection(name string) store.Collection {
	return &fsCollection{ref: d.ref.Collection(name)}
}

type fsDocument struct {
	snap *firestore.DocumentSnapshot
}

func (d fsDocument) ID() string { return d.snap.Ref.ID }

func (d fsDocument) DataTo(v any) error {
	return d.snap.DataTo(v)
}

func (d fsDocument) Data() map[string]any {
	return d.snap.Data()
}

func toFirestoreDir(dir store.Direction) firestore.Direction {
	if dir == store.Desc {
		return firestore.Desc
	}
	return firestore.Asc
}
