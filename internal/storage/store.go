// Package storage handles persistence of the name collection: a JSON file on
// disk as the source of truth and an ephemeral SQLite index for aggregate queries.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// emptyDocument is written when a store file does not exist yet.
var emptyDocument = []byte("[]\n")

// Store is a blob store holding the serialized collection.
type Store interface {
	// Load returns the stored bytes, creating an empty document first if needed.
	Load() ([]byte, error)
	// Save replaces the stored bytes.
	Save(data []byte) error
}

// FileStore keeps the collection in a single file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the path of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the file. A missing file is created with an empty array and
// never reported as not found.
func (s *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("creating directory for %s: %w", s.path, err)
	}
	if err := s.Save(emptyDocument); err != nil {
		return nil, fmt.Errorf("creating %s: %w", s.path, err)
	}
	return append([]byte(nil), emptyDocument...), nil
}

// Save writes data atomically using a temp file and rename, so a failed save
// leaves the previous content in place.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}

// MemStore is an in-memory Store, used by tests and dry runs.
type MemStore struct {
	Data  []byte
	Saves int
}

// Load returns the held bytes, initializing them to an empty array.
func (m *MemStore) Load() ([]byte, error) {
	if m.Data == nil {
		m.Data = append([]byte(nil), emptyDocument...)
	}
	return m.Data, nil
}

// Save replaces the held bytes.
func (m *MemStore) Save(data []byte) error {
	m.Data = append([]byte(nil), data...)
	m.Saves++
	return nil
}
