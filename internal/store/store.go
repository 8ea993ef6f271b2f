// Package store provides the string-keyed JSON document store backing the
// event catalog. Collections are read and written whole: a write replaces
// the entire document under its key, giving last-write-wins semantics
// across writers.
package store

import (
	"context"
	"sync"
)

// Well-known document keys.
const (
	KeyEvents        = "events"
	KeyCurrentUser   = "currentUser"
	KeyRegistrations = "registrations"
)

// KV is a synchronous whole-document store. Read returns nil with no error
// when the key is absent. Callers must tolerate malformed documents.
type KV interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, doc []byte) error
}

// MemoryStore is an in-process KV used for tests and for running the
// service without a database.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

// Read returns a copy of the document under key, or nil when absent.
func (m *MemoryStore) Read(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

// Write replaces the document under key.
func (m *MemoryStore) Write(_ context.Context, key string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(doc))
	copy(cp, doc)
	m.docs[key] = cp
	return nil
}
