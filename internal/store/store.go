// Package store provides the small key-value persistence layer used for
// ratings and other tournament artifacts.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Store is a flat key-value document store. Values are opaque JSON.
type Store interface {
	Get(key string) (json.RawMessage, bool, error)
	Put(key string, value json.RawMessage) error
	Keys() ([]string, error)
}

// FileStore keeps the whole store as one JSON object on disk. Writes go
// through a temp file and rename so a crash never leaves a torn file.
type FileStore struct {
	path    string
	archive bool
}

// NewFileStore opens (or will create on first write) the store at path.
// With archive set, every write first copies the previous version aside
// with a timestamp suffix.
func NewFileStore(path string, archive bool) *FileStore {
	return &FileStore{path: path, archive: archive}
}

func (fs *FileStore) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	docs := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", fs.path, err)
	}
	return docs, nil
}

func (fs *FileStore) save(docs map[string]json.RawMessage) error {
	if fs.archive {
		if err := fs.archiveCurrent(); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close store file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

func (fs *FileStore) archiveCurrent() error {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read store file for archive: %w", err)
	}
	stamp := time.Now().Format("20060102-150405")
	archPath := fmt.Sprintf("%s.%s", fs.path, stamp)
	if err := os.WriteFile(archPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to archive store file: %w", err)
	}
	return nil
}

func (fs *FileStore) Get(key string) (json.RawMessage, bool, error) {
	docs, err := fs.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := docs[key]
	return value, ok, nil
}

func (fs *FileStore) Put(key string, value json.RawMessage) error {
	docs, err := fs.load()
	if err != nil {
		return err
	}
	docs[key] = value
	return fs.save(docs)
}

// PutAll writes several keys in one load-save cycle.
func (fs *FileStore) PutAll(values map[string]json.RawMessage) error {
	docs, err := fs.load()
	if err != nil {
		return err
	}
	for k, v := range values {
		docs[k] = v
	}
	return fs.save(docs)
}

func (fs *FileStore) Keys() ([]string, error) {
	docs, err := fs.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(docs))
	for k := range docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// MemStore is an in-memory Store for tests and throwaway runs.
type MemStore struct {
	docs map[string]json.RawMessage
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]json.RawMessage)}
}

func (ms *MemStore) Get(key string) (json.RawMessage, bool, error) {
	value, ok := ms.docs[key]
	return value, ok, nil
}

func (ms *MemStore) Put(key string, value json.RawMessage) error {
	ms.docs[key] = value
	return nil
}

func (ms *MemStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(ms.docs))
	for k := range ms.docs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
