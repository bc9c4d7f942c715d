// Package docstore is a small document-store abstraction: named collections of flat
// JSON-like documents, each identified by a string "id" field.
package docstore

import (
	"context"
	"errors"
)

// KeyField is the document field every backend treats as the primary key.
const KeyField = "id"

var (
	ErrNotFound     = errors.New("docstore: document not found")
	ErrDuplicateKey = errors.New("docstore: duplicate key")
	ErrMissingKey   = errors.New("docstore: document has no id")
)

// Document is a decoded document. Values are JSON kinds: string, float64, bool, nil,
// []any and map[string]any.
type Document = map[string]any

// Filter matches documents whose fields equal every given value.
type Filter map[string]any

// ByID is the filter for a single document key.
func ByID(id string) Filter {
	return Filter{KeyField: id}
}

type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

type FindOptions struct {
	SortBy string
	Order  SortOrder
	Limit  int
}

type UpdateOptions struct {
	// Upsert inserts a document built from the filter, SetOnInsert and the $set fields
	// when nothing matches.
	Upsert      bool
	SetOnInsert Document
}

type UpdateResult struct {
	Matched  int64
	Upserted bool
}

// Store is implemented by MemStore, GormStore and MongoStore.
type Store interface {
	Find(ctx context.Context, coll string, filter Filter, opts *FindOptions) ([]Document, error)
	// FindOne returns ErrNotFound when nothing matches.
	FindOne(ctx context.Context, coll string, filter Filter) (Document, error)
	InsertOne(ctx context.Context, coll string, doc Document) error
	// UpdateOne sets fields on the first matching document. The update is atomic per document.
	UpdateOne(ctx context.Context, coll string, filter Filter, set Document, opts *UpdateOptions) (UpdateResult, error)
	DeleteOne(ctx context.Context, coll string, filter Filter) (int64, error)
	Count(ctx context.Context, coll string, filter Filter) (int64, error)
	Close(ctx context.Context) error
}
