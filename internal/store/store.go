// Package store defines the document-store interface the repositories are
// written against, so the rest of the backend is identical whether it runs
// on the in-memory adapter (local mode) or Cloud Firestore (production).
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// Direction orders query results.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Supported Where operators.
const (
	OpEqual        = "=="
	OpNotEqual     = "!="
	OpGreater      = ">"
	OpGreaterEqual = ">="
	OpLess         = "<"
	OpLessEqual    = "<="
)

// Store is a handle to a document database.
type Store interface {
	Collection(name string) Collection
	// Batch returns a write batch of queued deletes. Commit executes them
	// sequentially; there is no atomicity or rollback on partial failure.
	Batch() WriteBatch
	Close() error
}

// Query reads a filtered, optionally ordered set of documents. Where calls
// compose as a conjunction: each call appends one predicate to an ordered
// filter list applied in sequence.
type Query interface {
	Where(field, op string, value any) Query
	OrderBy(field string, dir Direction) Query
	Documents(ctx context.Context) ([]Document, error)
}

// Collection addresses a named collection. It is also a Query over all of
// its documents.
type Collection interface {
	Query
	Doc(id string) Doc
	// Add stores data under a generated id and returns it.
	Add(ctx context.Context, data map[string]any) (string, error)
}

// Doc addresses a single document.
type Doc interface {
	ID() string
	Get(ctx context.Context) (Document, error)
	Set(ctx context.Context, data map[string]any) error
	// Update merges fields into an existing document. ErrNotFound if the
	// document does not exist.
	Update(ctx context.Context, data map[string]any) error
	// Delete removes the document. Deleting a missing document is not an
	// error. Subcollections are left untouched.
	Delete(ctx context.Context) error
	// Collection addresses a subcollection of this document.
	Collection(name string) Collection
}

// Document is a read snapshot.
type Document interface {
	ID() string
	// DataTo decodes the document into a struct using `firestore` tags.
	DataTo(v any) error
	Data() map[string]any
}

// WriteBatch queues deletes for sequential execution.
type WriteBatch interface {
	Delete(doc Doc)
	Commit(ctx context.Context) error
}
