// ABOUTME: In-memory Store used by tests across packages
// ABOUTME: Deterministic stand-in for the file-backed store

package storage

import "sync"

// MemStore is a map-backed Store safe for concurrent use.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Read returns the value for key, or ErrNotFound.
func (ms *MemStore) Read(key string) ([]byte, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v, ok := ms.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Write stores a copy of value under key.
func (ms *MemStore) Write(key string, value []byte) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	ms.data[key] = v
	return nil
}

// Delete removes key. Absent keys are ignored.
func (ms *MemStore) Delete(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.data, key)
	return nil
}
