// Package storage persists small JSON documents between runs.
package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/quasilyte/gdata"
)

// Items is the raw key/value backend
type Items interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes JSON values by key
type Store struct {
	items Items
}

// Open creates a store in the per-user data directory of appName
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open data dir: %w", err)
	}
	return New(m), nil
}

// New creates a store over any backend
func New(items Items) *Store {
	return &Store{items: items}
}

// NewMemory creates a store that keeps everything in memory
func NewMemory() *Store {
	return New(&memoryItems{data: make(map[string][]byte)})
}

// LoadJSON decodes the value under key into v. found is false when nothing
// has been saved yet.
func (s *Store) LoadJSON(key string, v any) (found bool, err error) {
	data, err := s.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return true, nil
}

// SaveJSON encodes v under key
func (s *Store) SaveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

type memoryItems struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memoryItems) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryItems) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}
