package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"wedding-site/internal/models"
)

// FileStore keeps the whole guest collection in a single JSON document and
// rewrites it on every mutation. Fine for a private guest list of tens of
// records; the mutex keeps writers in this process from interleaving, but
// nothing guards against other processes touching the file.
type FileStore struct {
	mu   sync.RWMutex
	file string
}

// NewFileStore opens the collection at path, seeding it with the initial
// guest list if the file does not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{file: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(models.SeedGuests()); err != nil {
			return nil, fmt.Errorf("failed to seed guest file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat guest file: %w", err)
	}
	return s, nil
}

func (s *FileStore) GetByCode(ctx context.Context, code string) (*models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guests, err := s.load()
	if err != nil {
		return nil, err
	}
	key := NormalizeCode(code)
	for i := range guests {
		if NormalizeCode(guests[i].Code) == key {
			return guests[i].Clone(), nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) Update(ctx context.Context, code string, upd models.GuestUpdate) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests, err := s.load()
	if err != nil {
		return nil, err
	}
	key := NormalizeCode(code)
	for i := range guests {
		if NormalizeCode(guests[i].Code) != key {
			continue
		}
		upd.Apply(&guests[i])
		if err := s.save(guests); err != nil {
			return nil, err
		}
		return guests[i].Clone(), nil
	}
	return nil, ErrNotFound
}

func (s *FileStore) Close() error { return nil }

// load reads the full collection from disk.
func (s *FileStore) load() ([]models.Guest, error) {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return nil, fmt.Errorf("failed to read guest file: %w", err)
	}
	if len(data) == 0 {
		return []models.Guest{}, nil
	}
	var guests []models.Guest
	if err := json.Unmarshal(data, &guests); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guest file: %w", err)
	}
	return guests, nil
}

// save rewrites the full collection to disk.
func (s *FileStore) save(guests []models.Guest) error {
	data, err := json.MarshalIndent(guests, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal guests: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.file), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return os.WriteFile(s.file, data, 0644)
}
