package badgerstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govm-net/nftmint/state"
)

func setupTestStore(t *testing.T) state.TxStore {
	// No path opens badger in memory
	s, err := New(nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestRecordOperations(t *testing.T) {
	s := setupTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count uint64 `json:"count"`
	}

	var got record
	found, err := s.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set("rec", record{Name: "test", Count: 7}))
	found, err = s.Get("rec", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "test", Count: 7}, got)

	exists, err := s.Has("rec")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete("rec"))
	exists, err = s.Has("rec")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOnDiskStore(t *testing.T) {
	s, err := New(map[string]any{"path": t.TempDir()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("rec", uint64(42)))

	var v uint64
	found, err := s.Get("rec", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(42), v)
}

func TestTransactionRollback(t *testing.T) {
	s := setupTestStore(t)
	require.NoError(t, s.Set("kept", uint64(1)))

	failure := errors.New("boom")
	err := s.Transaction(func(tx state.Store) error {
		if err := tx.Set("added", uint64(2)); err != nil {
			return err
		}
		if err := tx.Delete("kept"); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	exists, err := s.Has("added")
	require.NoError(t, err)
	assert.False(t, exists)

	var v uint64
	found, err := s.Get("kept", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1), v)
}

func TestTransactionCommit(t *testing.T) {
	s := setupTestStore(t)

	err := s.Transaction(func(tx state.Store) error {
		if err := tx.Set("a", uint64(1)); err != nil {
			return err
		}
		return tx.Set("b", uint64(2))
	})
	require.NoError(t, err)

	var v uint64
	found, err := s.Get("a", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1), v)

	found, err = s.Get("b", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(2), v)
}
