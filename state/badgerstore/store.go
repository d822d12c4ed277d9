// Package badgerstore provides a store backend persisted in BadgerDB.
// Badger's own transactions carry the all-or-nothing guarantee.
package badgerstore

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/govm-net/nftmint/state"
)

// Store implements state.TxStore backed by a badger database
type Store struct {
	db *badger.DB
}

func init() {
	state.Register(state.BadgerBackendType, New)
}

// New creates a new badger-backed store. The database directory is taken
// from the "path" parameter; with no path the database is kept in memory.
func New(params map[string]any) (state.TxStore, error) {
	path := ""
	if params != nil {
		if p, ok := params["path"].(string); ok {
			path = p
		}
	}

	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// Get implements state.Store
func (s *Store) Get(key string, value any) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		found, err = txnGet(txn, key, value)
		return err
	})
	return found, err
}

// Set implements state.Store
func (s *Store) Set(key string, value any) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txnSet(txn, key, value)
	})
}

// Has implements state.Store
func (s *Store) Has(key string) (bool, error) {
	var exists bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		} else if err != nil {
			return err
		}
		exists = true
		return nil
	})
	return exists, err
}

// Delete implements state.Store
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Transaction implements state.TxStore using a native badger transaction
func (s *Store) Transaction(fn func(s state.Store) error) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return fn(&txStore{txn: txn})
	})
}

// Close implements state.TxStore
func (s *Store) Close() error {
	return s.db.Close()
}

func txnGet(txn *badger.Txn, key string, value any) (bool, error) {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get record %q: %w", key, err)
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return false, fmt.Errorf("failed to read record %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to decode record %q: %w", key, err)
	}
	return true, nil
}

func txnSet(txn *badger.Txn, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %q: %w", key, err)
	}
	return txn.Set([]byte(key), raw)
}

// txStore is the transactional view over a badger transaction
type txStore struct {
	txn *badger.Txn
}

func (t *txStore) Get(key string, value any) (bool, error) {
	return txnGet(t.txn, key, value)
}

func (t *txStore) Set(key string, value any) error {
	return txnSet(t.txn, key, value)
}

func (t *txStore) Has(key string) (bool, error) {
	_, err := t.txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, nil
}

func (t *txStore) Delete(key string) error {
	return t.txn.Delete([]byte(key))
}
