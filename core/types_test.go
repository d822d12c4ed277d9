package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromString(t *testing.T) {
	addr, err := AddressFromString("00112233445566778899aabbccddeeff00112233")
	require.NoError(t, err)
	assert.Equal(t, "00112233445566778899aabbccddeeff00112233", addr.String())

	// 0x prefix is accepted
	prefixed, err := AddressFromString("0x00112233445566778899aabbccddeeff00112233")
	require.NoError(t, err)
	assert.Equal(t, addr, prefixed)

	// Wrong length
	_, err = AddressFromString("0011")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Not hex
	_, err = AddressFromString("zz112233445566778899aabbccddeeff00112233")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAddressIsZero(t *testing.T) {
	assert.True(t, ZeroAddress.IsZero())

	addr, err := AddressFromString("00112233445566778899aabbccddeeff00112233")
	require.NoError(t, err)
	assert.False(t, addr.IsZero())
}

func TestParseCoin(t *testing.T) {
	coin, err := ParseCoin("5uom")
	require.NoError(t, err)
	assert.Equal(t, Coin{Denom: "uom", Amount: 5}, coin)
	assert.Equal(t, "5uom", coin.String())

	coin, err = ParseCoin(" 1000000uom ")
	require.NoError(t, err)
	assert.Equal(t, uint64(1000000), coin.Amount)

	// Missing denom
	_, err = ParseCoin("100")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Missing amount
	_, err = ParseCoin("uom")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Empty
	_, err = ParseCoin("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
