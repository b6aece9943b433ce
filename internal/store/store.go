// Package store persists legend requests per displayed field, so a field
// shown again gets the same scale it had last time. Storage is a cache of
// configurator inputs, never of outputs.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/mbeaudin/legendscale/pkg/legend"
)

// Store manages the settings file persistence.
type Store struct {
	path   string
	mu     sync.RWMutex
	meta   Meta
	fields map[string]legend.Request
}

// NewStore creates a Store instance and loads it from disk. A missing
// file yields an empty store; Save creates it.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		s.fields = map[string]legend.Request{}
	}

	return s, nil
}

// Load reads the settings file from disk.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse settings file: %w", err)
	}

	s.meta = file.Meta
	s.fields = file.Fields
	if s.fields == nil {
		s.fields = map[string]legend.Request{}
	}

	return nil
}

// Save writes the settings file to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file := storeFile{
		Version: storeVersion,
		Meta:    s.meta,
		Fields:  s.fields,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}

// Put remembers a request for a field, replacing any earlier one.
func (s *Store) Put(field string, req legend.Request) error {
	if field == "" {
		return fmt.Errorf("field name is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields[field] = req
	return nil
}

// Get retrieves the remembered request for a field.
func (s *Store) Get(field string) (legend.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.fields[field]
	if !ok {
		return legend.Request{}, fmt.Errorf("no settings stored for field %q", field)
	}

	return req, nil
}

// List returns all remembered entries sorted by field name.
func (s *Store) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.fields))
	for field, req := range s.fields {
		entries = append(entries, Entry{Field: field, Request: req})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Field < entries[j].Field })

	return entries
}

// Remove forgets a field's settings.
func (s *Store) Remove(field string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fields[field]; !ok {
		return fmt.Errorf("no settings stored for field %q", field)
	}

	delete(s.fields, field)
	return nil
}

// Reset forgets every field but keeps the user-editable meta block.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fields = map[string]legend.Request{}
}

// Ignored reports whether the file's meta block disables the store.
func (s *Store) Ignored() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta.Ignore
}

// Description returns the file's user-editable description.
func (s *Store) Description() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta.Description
}
