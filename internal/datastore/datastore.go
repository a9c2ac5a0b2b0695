package datastore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sync"

	"github.com/strivefit/strivefit/internal/model"
)

// Document is the entire persisted application state for the token-variant
// auth service.
type Document struct {
	Users []model.User `json:"users"`
}

// Store owns the single JSON document at a fixed path. The document is read
// once and cached for the lifetime of the store; every mutation rewrites the
// whole file. All access goes through the mutex, so concurrent handlers get
// serialized read-modify-write cycles instead of lost updates.
type Store struct {
	filename string

	mu     sync.Mutex
	cache  *Document
	loaded bool
}

func New(filename string) (*Store, error) {
	if err := os.MkdirAll(path.Dir(filename), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{filename: filename}, nil
}

// Load returns the cached document, reading the backing file on first use.
// A missing file yields an empty document without writing anything.
func (s *Store) Load() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (*Document, error) {
	if s.loaded {
		return s.cache, nil
	}

	data, err := os.ReadFile(s.filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.cache = &Document{Users: []model.User{}}
			s.loaded = true
			return s.cache, nil
		}
		return nil, fmt.Errorf("reading database file: %w", err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parsing database file: %w", err)
	}
	if doc.Users == nil {
		doc.Users = []model.User{}
	}

	s.cache = doc
	s.loaded = true
	return s.cache, nil
}

func (s *Store) save(doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing database: %w", err)
	}
	if err := os.WriteFile(s.filename, data, 0o644); err != nil {
		return fmt.Errorf("writing database file: %w", err)
	}
	s.cache = doc
	s.loaded = true
	return nil
}

// Save overwrites the backing file with doc and updates the cache.
func (s *Store) Save(doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Update runs fn against the current document under the store lock. If fn
// returns persist=true the document is written back before the lock is
// released; the error from fn is returned either way.
func (s *Store) Update(fn func(doc *Document) (persist bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	persist, fnErr := fn(doc)
	if persist {
		if err := s.save(doc); err != nil {
			return err
		}
	}
	return fnErr
}

// View runs fn against the current document under the store lock without
// persisting.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}
