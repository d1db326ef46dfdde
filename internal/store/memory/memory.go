// Package memory implements the store interface over process-local maps.
// It backs local-mode deployments and tests. Individual operations are
// serialized by a store-wide mutex, but there is no compare-and-swap:
// concurrent read-modify-write sequences on the same document can lose
// updates under interleaving.
package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"pitlane-backend-go/internal/store"
)

// IDGenerator produces document ids for Collection.Add. It receives the
// collection name (the full path for subcollections).
type IDGenerator func(collection string) string

// Option configures the store.
type Option func(*Store)

// WithIDGenerator replaces the default collection-prefixed counter. The
// server injects a UUID-based generator so ids cannot collide when more
// than one process runs against separate stores that later sync.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) { s.genID = gen }
}

// Store is the in-memory document store.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
	nextID      uint64
	genID       IDGenerator
}

// collection keeps documents in insertion order alongside the id index.
type collection struct {
	ids  []string
	docs map[string]map[string]any
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{collections: make(map[string]*collection)}
	s.genID = func(name string) string {
		// Caller holds s.mu.
		s.nextID++
		return fmt.Sprintf("%s_%d", name, s.nextID)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collection addresses a named collection, creating it lazily.
func (s *Store) Collection(name string) store.Collection {
	return &memCollection{store: s, name: name}
}

// Batch returns a WriteBatch of queued deletes.
func (s *Store) Batch() store.WriteBatch {
	return store.NewDeleteBatch()
}

// Close is a no-op; it exists to satisfy the store interface.
func (s *Store) Close() error {
	return nil
}

// col returns the named collection, creating it if needed. Caller must
// hold s.mu.
func (s *Store) col(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

// put inserts or replaces a document. Caller must hold s.mu.
func (c *collection) put(id string, data map[string]any) {
	if _, exists := c.docs[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.docs[id] = data
}

// remove deletes a document, preserving the order of the rest. Caller
// must hold s.mu.
func (c *collection) remove(id string) {
	if _, exists := c.docs[id]; !exists {
		return
	}
	delete(c.docs, id)
	for i, docID := range c.ids {
		if docID == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
}

type memCollection struct {
	store *Store
	name  string
}

func (c *memCollection) Doc(id string) store.Doc {
	return &memDoc{store: c.store, col: c.name, id: id}
}

func (c *memCollection) Add(_ context.Context, data map[string]any) (string, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	id := c.store.genID(c.name)
	c.store.col(c.name).put(id, maps.Clone(data))
	return id, nil
}

func (c *memCollection) Where(field, op string, value any) store.Query {
	return &memQuery{store: c.store, col: c.name, filters: []filter{{field, op, value}}}
}

func (c *memCollection) OrderBy(field string, dir store.Direction) store.Query {
	return &memQuery{store: c.store, col: c.name, order: &ordering{field, dir}}
}

func (c *memCollection) Documents(ctx context.Context) ([]store.Document, error) {
	return (&memQuery{store: c.store, col: c.name}).Documents(ctx)
}

type memDoc struct {
	store *Store
	col   string
	id    string
}

func (d *memDoc) ID() string { return d.id }

func (d *memDoc) Get(_ context.Context) (store.Document, error) {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	data, ok := d.store.col(d.col).docs[d.id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", d.col, d.id, store.ErrNotFound)
	}
	return memDocument{id: d.id, data: maps.Clone(data)}, nil
}

func (d *memDoc) Set(_ context.Context, data map[string]any) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.col(d.col).put(d.id, maps.Clone(data))
	return nil
}

func (d *memDoc) Update(_ context.Context, data map[string]any) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	existing, ok := d.store.col(d.col).docs[d.id]
	if !ok {
		return fmt.Errorf("%s/%s: %w", d.col, d.id, store.ErrNotFound)
	}
	merged := maps.Clone(existing)
	maps.Copy(merged, data)
	d.store.col(d.col).put(d.id, merged)
	return nil
}

// Delete removes the document. Subcollection entries are orphaned, not
// cascaded; callers that need cleanup batch it explicitly.
func (d *memDoc) Delete(_ context.Context) error {
	d.store.mu.Lock()
	defer d.store.mu.Unlock()
	d.store.col(d.col).remove(d.id)
	return nil
}

// Collection addresses a subcollection, stored as a flat collection keyed
// by the composite path parent/id/name.
func (d *memDoc) Collection(name string) store.Collection {
	return &memCollection{store: d.store, name: fmt.Sprintf("%s/%s/%s", d.col, d.id, name)}
}

type filter struct {
	field string
	op    string
	value any
}

type ordering struct {
	field string
	dir   store.Direction
}

type memQuery struct {
	store   *Store
	col     string
	filters []filter
	order   *ordering
}

func (q *memQuery) Where(field, op string, value any) store.Query {
	next := *q
	next.filters = append(append([]filter(nil), q.filters...), filter{field, op, value})
	return &next
}

func (q *memQuery) OrderBy(field string, dir store.Direction) store.Query {
	next := *q
	next.order = &ordering{field, dir}
	return &next
}

// Documents scans the collection in insertion order, applying each filter
// in sequence, then sorts if an ordering was requested.
func (q *memQuery) Documents(_ context.Context) ([]store.Document, error) {
	q.store.mu.Lock()
	col := q.store.col(q.col)
	var out []store.Document
	for _, id := range col.ids {
		data := col.docs[id]
		if q.matchesAll(data) {
			out = append(out, memDocument{id: id, data: maps.Clone(data)})
		}
	}
	q.store.mu.Unlock()

	if q.order != nil {
		field, dir := q.order.field, q.order.dir
		sort.SliceStable(out, func(i, j int) bool {
			c, ok := compareValues(out[i].Data()[field], out[j].Data()[field])
			if !ok {
				return false
			}
			if dir == store.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return out, nil
}

func (q *memQuery) matchesAll(data map[string]any) bool {
	for _, f := range q.filters {
		if !matches(data[f.field], f.value, f.op) {
			return false
		}
	}
	return true
}

type memDocument struct {
	id   string
	data map[string]any
}

func (d memDocument) ID() string { return d.id }

func (d memDocument) Data() map[string]any { return d.data }

func (d memDocument) DataTo(v any) error {
	return decodeDocument(d.data, v)
}
