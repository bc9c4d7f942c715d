package docstore

import (
	"context"
	"sync"
)

// MemStore keeps collections in process memory. Used for tests and the memory:// URL.
type MemStore struct {
	mu sync.RWMutex
	// Structure: [collection] -> documents in insertion order
	data map[string][]Document
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]Document)}
}

func (m *MemStore) Find(_ context.Context, coll string, filter Filter, opts *FindOptions) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Document
	for _, doc := range m.data[coll] {
		if matches(doc, filter) {
			out = append(out, cloneDoc(doc))
		}
	}
	return applyFindOptions(out, opts), nil
}

func (m *MemStore) FindOne(_ context.Context, coll string, filter Filter) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.indexOf(coll, filter); i >= 0 {
		return cloneDoc(m.data[coll][i]), nil
	}
	return nil, ErrNotFound
}

func (m *MemStore) InsertOne(_ context.Context, coll string, doc Document) error {
	id, err := keyOf(doc)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(coll, ByID(id)) >= 0 {
		return ErrDuplicateKey
	}
	m.data[coll] = append(m.data[coll], cloneDoc(doc))
	return nil
}

func (m *MemStore) UpdateOne(_ context.Context, coll string, filter Filter, set Document, opts *UpdateOptions) (UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(coll, filter); i >= 0 {
		updated := cloneDoc(m.data[coll][i])
		for k, v := range set {
			updated[k] = v
		}
		m.data[coll][i] = updated
		return UpdateResult{Matched: 1}, nil
	}

	if opts == nil || !opts.Upsert {
		return UpdateResult{}, nil
	}
	doc := upsertDocument(filter, set, opts)
	id, err := keyOf(doc)
	if err != nil {
		return UpdateResult{}, err
	}
	if m.indexOf(coll, ByID(id)) >= 0 {
		return UpdateResult{}, ErrDuplicateKey
	}
	m.data[coll] = append(m.data[coll], doc)
	return UpdateResult{Upserted: true}, nil
}

func (m *MemStore) DeleteOne(_ context.Context, coll string, filter Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(coll, filter)
	if i < 0 {
		return 0, nil
	}
	docs := m.data[coll]
	m.data[coll] = append(docs[:i:i], docs[i+1:]...)
	return 1, nil
}

func (m *MemStore) Count(_ context.Context, coll string, filter Filter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, doc := range m.data[coll] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

func (m *MemStore) Close(context.Context) error { return nil }

// indexOf MUST be called while holding m.mu.
func (m *MemStore) indexOf(coll string, filter Filter) int {
	for i, doc := range m.data[coll] {
		if matches(doc, filter) {
			return i
		}
	}
	return -1
}
