package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govm-net/nftmint/state"
)

func TestRecordOperations(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	type record struct {
		Name  string `json:"name"`
		Count uint64 `json:"count"`
	}

	// Missing key
	var got record
	found, err := s.Get("missing", &got)
	require.NoError(t, err)
	assert.False(t, found)

	// Set and get
	require.NoError(t, s.Set("rec", record{Name: "test", Count: 7}))
	found, err = s.Get("rec", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record{Name: "test", Count: 7}, got)

	// Has
	exists, err := s.Has("rec")
	require.NoError(t, err)
	assert.True(t, exists)

	// Delete
	require.NoError(t, s.Delete("rec"))
	exists, err = s.Has("rec")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing key is not an error
	require.NoError(t, s.Delete("rec"))
}

func TestTransactionCommit(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, s.Set("kept", uint64(1)))

	err = s.Transaction(func(tx state.Store) error {
		if err := tx.Set("added", uint64(2)); err != nil {
			return err
		}
		return tx.Delete("kept")
	})
	require.NoError(t, err)

	var v uint64
	found, err := s.Get("added", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(2), v)

	exists, err := s.Has("kept")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionRollback(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, s.Set("kept", uint64(1)))

	failure := errors.New("boom")
	err = s.Transaction(func(tx state.Store) error {
		if err := tx.Set("added", uint64(2)); err != nil {
			return err
		}
		if err := tx.Delete("kept"); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)

	// No write survived
	exists, err := s.Has("added")
	require.NoError(t, err)
	assert.False(t, exists)

	var v uint64
	found, err := s.Get("kept", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint64(1), v)
}

func TestTransactionReadsOwnWrites(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	require.NoError(t, s.Set("rec", uint64(1)))

	err = s.Transaction(func(tx state.Store) error {
		if err := tx.Set("rec", uint64(2)); err != nil {
			return err
		}
		var v uint64
		found, err := tx.Get("rec", &v)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, uint64(2), v)

		if err := tx.Delete("rec"); err != nil {
			return err
		}
		exists, err := tx.Has("rec")
		require.NoError(t, err)
		assert.False(t, exists)
		return nil
	})
	require.NoError(t, err)
}
