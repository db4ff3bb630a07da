package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps each collection in <dir>/<collection>.json as one indented
// JSON array. The mutex serializes the read-modify-write cycles of handlers
// in this process; there is no cross-process locking, so the last writer
// wins, which is an accepted limitation of the flat-file store.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a store rooted at dir. The directory is created on
// first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (fs *FileStore) path(collection string) string {
	return filepath.Join(fs.dir, collection+".json")
}

// Load reads a collection into out. A missing file means an empty
// collection, not an error. A file that exists but does not hold a JSON
// array of records comes back as a *ParseError.
func (fs *FileStore) Load(collection string, out any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := os.ReadFile(fs.path(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Probe for a well-formed array first so a decode failure cannot leave
	// out half-filled.
	var probe []json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return &ParseError{Collection: collection, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ParseError{Collection: collection, Err: err}
	}
	return nil
}

// Save replaces the collection file in full.
func (fs *FileStore) Save(collection string, records any) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(fs.path(collection), data, 0o644)
}
