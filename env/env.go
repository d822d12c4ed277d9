// Package env hosts contract calls over a persistent store, playing the
// role the chain plays in production: it advances block height, escrows
// the funds attached to an execute call, invokes the entry point, and
// refunds the escrow when the call fails.
package env

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/govm-net/nftmint/api"
	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/state"
)

// Host-side storage keys, kept outside the contract's namespaces
const (
	heightKey     = "env/height"
	bankKeyPrefix = "bank/"
)

// Env is a single-contract host environment
type Env struct {
	store    state.TxStore
	contract core.Address
}

// New creates an environment for one contract instance over store
func New(store state.TxStore, contract core.Address) *Env {
	return &Env{store: store, contract: contract}
}

// Store returns the underlying store
func (e *Env) Store() state.TxStore {
	return e.store
}

func balanceKey(addr core.Address, denom string) string {
	return bankKeyPrefix + addr.String() + "/" + denom
}

// Balance returns addr's balance in denom
func (e *Env) Balance(addr core.Address, denom string) (uint64, error) {
	var amount uint64
	if _, err := e.store.Get(balanceKey(addr, denom), &amount); err != nil {
		return 0, err
	}
	return amount, nil
}

// Deposit credits addr with coin. This is the harness's faucet; on a
// real chain balances come from the bank module.
func (e *Env) Deposit(addr core.Address, coin core.Coin) error {
	balance, err := e.Balance(addr, coin.Denom)
	if err != nil {
		return err
	}
	return e.store.Set(balanceKey(addr, coin.Denom), balance+coin.Amount)
}

// transfer moves amount between host bank balances
func (e *Env) transfer(from, to core.Address, coin core.Coin) error {
	fromBalance, err := e.Balance(from, coin.Denom)
	if err != nil {
		return err
	}
	if fromBalance < coin.Amount {
		return fmt.Errorf("insufficient balance: %s has %d%s, needs %s", from, fromBalance, coin.Denom, coin)
	}
	toBalance, err := e.Balance(to, coin.Denom)
	if err != nil {
		return err
	}
	if err := e.store.Set(balanceKey(from, coin.Denom), fromBalance-coin.Amount); err != nil {
		return err
	}
	return e.store.Set(balanceKey(to, coin.Denom), toBalance+coin.Amount)
}

// nextBlock advances the persisted block height and stamps the wall
// clock as block time
func (e *Env) nextBlock() (uint64, int64, error) {
	var height uint64
	if _, err := e.store.Get(heightKey, &height); err != nil {
		return 0, 0, err
	}
	height++
	if err := e.store.Set(heightKey, height); err != nil {
		return 0, 0, err
	}
	return height, time.Now().Unix(), nil
}

// Instantiate runs the contract's one-time setup
func (e *Env) Instantiate(c api.Contract, sender core.Address, msg []byte) (*api.Response, error) {
	height, now, err := e.nextBlock()
	if err != nil {
		return nil, err
	}
	ctx := e.callContext(sender, nil, height, now)
	return c.Instantiate(ctx, msg)
}

// Execute runs a state-mutating call. Attached funds move from the
// sender to the contract before the call and move back when the call
// fails, mirroring the chain's transaction rollback.
func (e *Env) Execute(c api.Contract, sender core.Address, funds []core.Coin, msg []byte) (*api.Response, error) {
	height, now, err := e.nextBlock()
	if err != nil {
		return nil, err
	}

	for i, coin := range funds {
		if err := e.transfer(sender, e.contract, coin); err != nil {
			// Undo any coins already escrowed
			e.refund(sender, funds[:i])
			return nil, err
		}
	}

	ctx := e.callContext(sender, funds, height, now)
	resp, err := c.Execute(ctx, msg)
	if err != nil {
		e.refund(sender, funds)
		return nil, err
	}
	return resp, nil
}

// Query runs a read-only call
func (e *Env) Query(c api.Contract, msg []byte) ([]byte, error) {
	var height uint64
	if _, err := e.store.Get(heightKey, &height); err != nil {
		return nil, err
	}
	ctx := e.callContext(core.ZeroAddress, nil, height, time.Now().Unix())
	return c.Query(ctx, msg)
}

func (e *Env) refund(sender core.Address, funds []core.Coin) {
	for _, coin := range funds {
		if err := e.transfer(e.contract, sender, coin); err != nil {
			slog.Error("failed to refund escrowed funds", "sender", sender, "coin", coin, "error", err)
		}
	}
}

func (e *Env) callContext(sender core.Address, funds []core.Coin, height uint64, now int64) core.Context {
	return &callContext{
		env:    e,
		sender: sender,
		funds:  funds,
		height: height,
		time:   now,
	}
}

// callContext implements core.Context for one hosted call
type callContext struct {
	env    *Env
	sender core.Address
	funds  []core.Coin
	height uint64
	time   int64
}

func (c *callContext) Sender() core.Address {
	return c.sender
}

func (c *callContext) Funds() []core.Coin {
	return c.funds
}

func (c *callContext) BlockHeight() uint64 {
	return c.height
}

func (c *callContext) BlockTime() int64 {
	return c.time
}

func (c *callContext) ContractAddress() core.Address {
	return c.env.contract
}

func (c *callContext) Store() state.TxStore {
	return c.env.store
}

// Log implements core.Context
func (c *callContext) Log(event string, keyValues ...any) {
	params := []any{
		"block", c.height,
		"contract", c.env.contract,
		"event", event,
	}
	params = append(params, keyValues...)
	slog.Info("Contract event", params...)
}
