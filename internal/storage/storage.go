// Package storage persists uploaded files under slash-separated keys such as "cv/<name>".
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrNotExist   = errors.New("storage: object does not exist")
	ErrInvalidKey = errors.New("storage: invalid key")
)

type Object struct {
	Key        string
	Size       int64
	ModifiedAt time.Time
}

type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) error
	// Open returns ErrNotExist for unknown keys. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, *Object, error)
	// Delete is idempotent: removing a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// List returns the objects whose key starts with prefix.
	List(ctx context.Context, prefix string) ([]Object, error)
}

// cleanKey rejects absolute keys and any key that escapes the storage root.
func cleanKey(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	cleaned := path.Clean(key)
	if cleaned != key || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
