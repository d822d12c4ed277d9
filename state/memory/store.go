// Package memory provides an in-memory store backend, used by tests and
// the mock execution environment. Transactions are implemented with a
// write overlay that is merged into the base map only on success.
package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/govm-net/nftmint/state"
)

// Store implements state.TxStore backed by an in-memory map
type Store struct {
	mu      sync.Mutex
	records map[string][]byte
}

func init() {
	state.Register(state.MemoryBackendType, New)
}

// New creates a new in-memory store. It takes no parameters.
func New(params map[string]any) (state.TxStore, error) {
	return &Store{
		records: make(map[string][]byte),
	}, nil
}

// Get implements state.Store
func (s *Store) Get(key string, value any) (bool, error) {
	s.mu.Lock()
	raw, exists := s.records[key]
	s.mu.Unlock()
	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}
	return true, nil
}

// Set implements state.Store
func (s *Store) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}
	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()
	return nil
}

// Has implements state.Store
func (s *Store) Has(key string) (bool, error) {
	s.mu.Lock()
	_, exists := s.records[key]
	s.mu.Unlock()
	return exists, nil
}

// Delete implements state.Store
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// Transaction implements state.TxStore. Writes go to an overlay that is
// merged into the base map only when fn succeeds.
func (s *Store) Transaction(fn func(s state.Store) error) error {
	view := &txView{
		base:    s,
		pending: make(map[string][]byte),
		deleted: make(map[string]bool),
	}
	if err := fn(view); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range view.deleted {
		delete(s.records, key)
	}
	for key, raw := range view.pending {
		s.records[key] = raw
	}
	return nil
}

// Close implements state.TxStore
func (s *Store) Close() error {
	return nil
}

// txView is the transactional overlay over a memory store
type txView struct {
	base    *Store
	pending map[string][]byte
	deleted map[string]bool
}

func (v *txView) lookup(key string) ([]byte, bool) {
	if v.deleted[key] {
		return nil, false
	}
	if raw, exists := v.pending[key]; exists {
		return raw, true
	}
	v.base.mu.Lock()
	raw, exists := v.base.records[key]
	v.base.mu.Unlock()
	return raw, exists
}

func (v *txView) Get(key string, value any) (bool, error) {
	raw, exists := v.lookup(key)
	if !exists {
		return false, nil
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}
	return true, nil
}

func (v *txView) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}
	delete(v.deleted, key)
	v.pending[key] = raw
	return nil
}

func (v *txView) Has(key string) (bool, error) {
	_, exists := v.lookup(key)
	return exists, nil
}

func (v *txView) Delete(key string) error {
	delete(v.pending, key)
	v.deleted[key] = true
	return nil
}
