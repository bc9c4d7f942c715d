// Package singleton stores configuration documents that exist at most once, under a
// fixed key, and fall back to built-in defaults until first written.
package singleton

import (
	"context"
	"fmt"
	"time"

	"miswa/internal/docstore"
)

const updatedAtField = "updated_at"

// Store is a typed singleton document. T must round-trip through docstore.Encode and
// carry "id" and "updated_at" json fields.
type Store[T any] struct {
	store    docstore.Store
	coll     string
	key      string
	defaults func() T
	now      func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func New[T any](store docstore.Store, coll, key string, defaults func() T, opts ...Option) *Store[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{store: store, coll: coll, key: key, defaults: defaults, now: o.now}
}

func (s *Store[T]) Key() string { return s.key }

// Get returns the stored document, or the defaults when none has been written.
// Reading never persists anything.
func (s *Store[T]) Get(ctx context.Context) (*T, error) {
	doc, err := s.store.FindOne(ctx, s.coll, docstore.ByID(s.key))
	if err != nil {
		if docstore.IsNotFound(err) {
			v := s.defaults()
			return &v, nil
		}
		return nil, fmt.Errorf("get %s: %w", s.coll, err)
	}

	var v T
	if err := docstore.Decode(doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Update writes the fields present in patch and stamps updated_at in one atomic upsert.
// On first write the defaults fill every field the patch does not carry. patch is a
// struct of pointer fields tagged omitempty; nil fields are left untouched.
func (s *Store[T]) Update(ctx context.Context, patch any) (*T, error) {
	set, err := patchFields(patch)
	if err != nil {
		return nil, err
	}
	set[updatedAtField] = s.now().UTC().Format(time.RFC3339Nano)

	onInsert, err := docstore.Encode(s.defaults())
	if err != nil {
		return nil, err
	}
	for k := range set {
		delete(onInsert, k)
	}
	onInsert[docstore.KeyField] = s.key

	_, err = s.store.UpdateOne(ctx, s.coll, docstore.ByID(s.key), set, &docstore.UpdateOptions{
		Upsert:      true,
		SetOnInsert: onInsert,
	})
	if err != nil {
		return nil, fmt.Errorf("update %s: %w", s.coll, err)
	}
	return s.Get(ctx)
}

// ApplyPatch merges the non-nil fields of patch into existing without touching storage.
func ApplyPatch[T any](existing T, patch any) (T, error) {
	var out T
	base, err := docstore.Encode(existing)
	if err != nil {
		return out, err
	}
	set, err := patchFields(patch)
	if err != nil {
		return out, err
	}
	for k, v := range set {
		base[k] = v
	}
	if err := docstore.Decode(base, &out); err != nil {
		return out, err
	}
	return out, nil
}

// patchFields encodes patch and drops keys a patch may never change.
func patchFields(patch any) (docstore.Document, error) {
	set, err := docstore.Encode(patch)
	if err != nil {
		return nil, err
	}
	if set == nil {
		set = docstore.Document{}
	}
	delete(set, docstore.KeyField)
	delete(set, updatedAtField)
	for k, v := range set {
		if v == nil {
			delete(set, k)
		}
	}
	return set, nil
}
