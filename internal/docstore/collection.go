package docstore

import (
	"context"
	"errors"
)

// Collection is a typed view over one named collection.
type Collection[T any] struct {
	store Store
	name  string
}

func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Store() Store { return c.store }

func (c *Collection[T]) Find(ctx context.Context, filter Filter, opts *FindOptions) ([]T, error) {
	docs, err := c.store.Find(ctx, c.name, filter, opts)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := Decode(doc, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FindOne returns ErrNotFound when nothing matches.
func (c *Collection[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	doc, err := c.store.FindOne(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	var v T
	if err := Decode(doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.FindOne(ctx, ByID(id))
}

func (c *Collection[T]) Insert(ctx context.Context, v *T) error {
	doc, err := Encode(v)
	if err != nil {
		return err
	}
	return c.store.InsertOne(ctx, c.name, doc)
}

// Update applies set to the first document matching filter and returns the stored result.
func (c *Collection[T]) Update(ctx context.Context, filter Filter, set Document) (*T, error) {
	doc, err := c.store.FindOne(ctx, c.name, filter)
	if err != nil {
		return nil, err
	}
	id, err := keyOf(doc)
	if err != nil {
		return nil, err
	}
	res, err := c.store.UpdateOne(ctx, c.name, ByID(id), set, nil)
	if err != nil {
		return nil, err
	}
	if res.Matched == 0 {
		return nil, ErrNotFound
	}
	return c.FindByID(ctx, id)
}

// Delete reports ErrNotFound when nothing was removed.
func (c *Collection[T]) Delete(ctx context.Context, filter Filter) error {
	n, err := c.store.DeleteOne(ctx, c.name, filter)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	return c.store.Count(ctx, c.name, filter)
}

// IsNotFound is shorthand for errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
