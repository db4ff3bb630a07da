package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	saved := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, fs.Save("things", saved))

	var loaded []record
	require.NoError(t, fs.Load("things", &loaded))
	assert.Equal(t, saved, loaded)
}

func TestFileStoreMissingFileIsEmpty(t *testing.T) {
	fs := NewFileStore(t.TempDir())

	var loaded []record
	require.NoError(t, fs.Load("things", &loaded))
	assert.Empty(t, loaded)
}

func TestFileStoreMalformedFileReturnsParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	fs := NewFileStore(dir)
	var loaded []record
	err := fs.Load("things", &loaded)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "things", parseErr.Collection)
}

func TestFileStoreNonArrayFileReturnsParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte(`{"id":"1"}`), 0o644))

	fs := NewFileStore(dir)
	var loaded []record
	var parseErr *ParseError
	require.ErrorAs(t, fs.Load("things", &loaded), &parseErr)
}

func TestLoadOrEmptyMapsParseErrorToEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("corrupt"), 0o644))

	fs := NewFileStore(dir)
	loaded := []record{{ID: "stale"}}
	require.NoError(t, LoadOrEmpty(fs, "things", &loaded))
	assert.Empty(t, loaded, "a corrupt collection renders as empty, it does not fail the request")
}

func TestMemStoreBehavesLikeFileStore(t *testing.T) {
	ms := NewMemStore()

	var loaded []record
	require.NoError(t, ms.Load("things", &loaded))
	assert.Empty(t, loaded)

	require.NoError(t, ms.Save("things", []record{{ID: "1", Name: "first"}}))
	require.NoError(t, ms.Load("things", &loaded))
	require.Len(t, loaded, 1)
	assert.Equal(t, "first", loaded[0].Name)

	ms.SetRaw("things", []byte("corrupt"))
	var parseErr *ParseError
	require.ErrorAs(t, ms.Load("things", &loaded), &parseErr)
}
