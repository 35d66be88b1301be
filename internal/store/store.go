package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store is a flat-file JSON document store. The whole database is one JSON
// object on disk keyed by collection name, and every query is a linear scan
// over the decoded collection. Atomicity covers a single operation only;
// there are no cross-record transactions.
type Store struct {
	mu     sync.Mutex
	path   string
	minify bool

	collections map[string]json.RawMessage
}

// Open loads the database file at path, creating an empty store if the file
// doesn't exist yet.
func Open(path string, minify bool) (*Store, error) {
	s := &Store{
		path:        path,
		minify:      minify,
		collections: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.collections); err != nil {
		return nil, fmt.Errorf("store: parsing %s: %w", path, err)
	}
	return s, nil
}

// flush writes the entire database back to disk. Caller must hold mu.
func (s *Store) flush() error {
	var (
		data []byte
		err  error
	)
	if s.minify {
		data, err = json.Marshal(s.collections)
	} else {
		data, err = json.MarshalIndent(s.collections, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("store: encoding: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: creating %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) read(name string, out any) error {
	raw, ok := s.collections[name]
	if !ok {
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) write(name string, docs any) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	s.collections[name] = raw
	return s.flush()
}
