// Package state defines the persistent state store abstraction used by
// contracts. A store is a typed key-value view: records are encoded as
// JSON under fixed string keys. Mutations performed inside Transaction
// are applied all-or-nothing, which is what gives a contract call its
// atomicity; the host serializes calls, so stores see no concurrent
// transactions.
package state

// Store is the typed key-value view of contract state.
type Store interface {
	// Get reads the record under key into value. It returns false
	// when no record exists, with value left untouched.
	Get(key string, value any) (bool, error)

	// Set writes value under key, replacing any existing record.
	Set(key string, value any) error

	// Has reports whether a record exists under key.
	Has(key string) (bool, error)

	// Delete removes the record under key. Deleting a missing key is
	// not an error.
	Delete(key string) error
}

// TxStore is a Store whose mutations can be grouped into an atomic unit.
type TxStore interface {
	Store

	// Transaction runs fn against a transactional view of the store.
	// If fn returns an error, every write made through the view is
	// discarded and the error is returned; otherwise all writes are
	// committed together.
	Transaction(fn func(s Store) error) error

	// Close releases any resources held by the backend.
	Close() error
}
