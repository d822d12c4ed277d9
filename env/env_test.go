package env_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/env"
	"github.com/govm-net/nftmint/mint"
	"github.com/govm-net/nftmint/state/memory"
)

func testAddr(t *testing.T, last byte) core.Address {
	t.Helper()
	addr, err := core.AddressFromString(fmt.Sprintf("00000000000000000000000000000000000000%02x", last))
	require.NoError(t, err)
	return addr
}

// setupEnv hosts a freshly instantiated contract priced at 5uom with a
// cap of 100 mints
func setupEnv(t *testing.T) (*env.Env, core.Address, core.Address) {
	t.Helper()
	store, err := memory.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	contract := testAddr(t, 0xff)
	minter := testAddr(t, 0x01)
	e := env.New(store, contract)

	raw := fmt.Sprintf(`{
		"name": "Test Drop",
		"symbol": "DROP",
		"minter": %q,
		"mint_price": {"denom": "uom", "amount": 5},
		"max_mints": 100,
		"token_uri": "ipfs://QmMeta"
	}`, minter.String())
	_, err = e.Instantiate(mint.Contract{}, minter, []byte(raw))
	require.NoError(t, err)

	return e, contract, minter
}

func TestDepositAndBalance(t *testing.T) {
	store, err := memory.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	e := env.New(store, testAddr(t, 0xff))
	alice := testAddr(t, 0x02)

	balance, err := e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	require.NoError(t, e.Deposit(alice, core.NewCoin(10, "uom")))
	require.NoError(t, e.Deposit(alice, core.NewCoin(5, "uom")))

	balance, err = e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), balance)
}

func TestExecuteEscrowsFunds(t *testing.T) {
	e, contract, _ := setupEnv(t)
	alice := testAddr(t, 0x02)
	require.NoError(t, e.Deposit(alice, core.NewCoin(20, "uom")))

	msg := fmt.Sprintf(`{"mint": {"owner": %q}}`, alice.String())
	_, err := e.Execute(mint.Contract{}, alice, []core.Coin{core.NewCoin(5, "uom")}, []byte(msg))
	require.NoError(t, err)

	// Payment stays with the contract on success
	balance, err := e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(15), balance)

	balance, err = e.Balance(contract, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(5), balance)

	out, err := e.Query(mint.Contract{}, []byte(`{"num_tokens": {}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 1}`, string(out))
}

func TestExecuteRefundsOnFailure(t *testing.T) {
	e, contract, _ := setupEnv(t)
	alice := testAddr(t, 0x02)
	require.NoError(t, e.Deposit(alice, core.NewCoin(20, "uom")))

	// 3uom against a 5uom price fails inside the contract; the escrow
	// comes back
	msg := fmt.Sprintf(`{"mint": {"owner": %q}}`, alice.String())
	_, err := e.Execute(mint.Contract{}, alice, []core.Coin{core.NewCoin(3, "uom")}, []byte(msg))
	assert.ErrorIs(t, err, core.ErrInsufficientPayment)

	balance, err := e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(20), balance)

	balance, err = e.Balance(contract, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)

	out, err := e.Query(mint.Contract{}, []byte(`{"num_tokens": {}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 0}`, string(out))
}

func TestExecuteRejectsUnfundedSender(t *testing.T) {
	e, contract, _ := setupEnv(t)
	alice := testAddr(t, 0x02)
	require.NoError(t, e.Deposit(alice, core.NewCoin(4, "uom")))

	// The escrow itself fails before the contract runs
	msg := fmt.Sprintf(`{"mint": {"owner": %q}}`, alice.String())
	_, err := e.Execute(mint.Contract{}, alice, []core.Coin{core.NewCoin(5, "uom")}, []byte(msg))
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrInsufficientPayment)

	balance, err := e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), balance)

	balance, err = e.Balance(contract, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestPartialEscrowIsUndone(t *testing.T) {
	e, contract, _ := setupEnv(t)
	alice := testAddr(t, 0x02)
	require.NoError(t, e.Deposit(alice, core.NewCoin(10, "uom")))
	// No "other" balance at all, so the second escrow leg fails

	msg := fmt.Sprintf(`{"mint": {"owner": %q}}`, alice.String())
	funds := []core.Coin{core.NewCoin(5, "uom"), core.NewCoin(1, "other")}
	_, err := e.Execute(mint.Contract{}, alice, funds, []byte(msg))
	require.Error(t, err)

	// The first leg was rolled back
	balance, err := e.Balance(alice, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), balance)

	balance, err = e.Balance(contract, "uom")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), balance)
}

func TestBlockHeightAdvances(t *testing.T) {
	e, _, minter := setupEnv(t)

	var before uint64
	_, err := e.Store().Get("env/height", &before)
	require.NoError(t, err)

	_, err = e.Execute(mint.Contract{}, minter, nil, []byte(`{"toggle_minting": {}}`))
	require.NoError(t, err)

	var after uint64
	_, err = e.Store().Get("env/height", &after)
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
