package store

import (
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store used by tests in place of real files. It
// round-trips records through JSON so it behaves like FileStore does,
// including the snapshot-on-save semantics.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]byte
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]byte)}
}

// Load decodes the stored collection into out; an absent collection leaves
// out empty.
func (ms *MemStore) Load(collection string, out any) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	data, ok := ms.collections[collection]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Collection: collection, Err: err}
	}
	return nil
}

// Save replaces the collection with an encoded copy of records.
func (ms *MemStore) Save(collection string, records any) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	ms.collections[collection] = data
	return nil
}

// SetRaw stores raw bytes for a collection, letting tests plant malformed
// data to exercise the fail-open load path.
func (ms *MemStore) SetRaw(collection string, data []byte) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.collections[collection] = data
}
