// Package mock provides a configurable execution context for contract
// tests: sender, funds and block info are set directly, state lives in
// an in-memory store, and emitted events are captured for assertions.
package mock

import (
	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/state"
	"github.com/govm-net/nftmint/state/memory"
)

// Event is one captured contract event
type Event struct {
	Name      string
	KeyValues []any
}

// Context implements core.Context for tests
type Context struct {
	sender   core.Address
	funds    []core.Coin
	height   uint64
	time     int64
	contract core.Address
	store    state.TxStore

	// Events holds every event the contract emitted, in order
	Events []Event
}

// NewContext creates a mock context backed by a fresh in-memory store
func NewContext() *Context {
	store, err := memory.New(nil)
	if err != nil {
		panic(err)
	}
	return NewContextWithStore(store)
}

// NewContextWithStore creates a mock context over an existing store, for
// tests that exercise a specific backend
func NewContextWithStore(store state.TxStore) *Context {
	return &Context{store: store}
}

// WithSender sets the caller address
func (c *Context) WithSender(addr core.Address) *Context {
	c.sender = addr
	return c
}

// WithFunds sets the coins attached to the next call
func (c *Context) WithFunds(funds ...core.Coin) *Context {
	c.funds = funds
	return c
}

// WithBlock sets the block height and timestamp
func (c *Context) WithBlock(height uint64, time int64) *Context {
	c.height = height
	c.time = time
	return c
}

// WithContract sets the contract address
func (c *Context) WithContract(addr core.Address) *Context {
	c.contract = addr
	return c
}

// Sender implements core.Context
func (c *Context) Sender() core.Address {
	return c.sender
}

// Funds implements core.Context
func (c *Context) Funds() []core.Coin {
	return c.funds
}

// BlockHeight implements core.Context
func (c *Context) BlockHeight() uint64 {
	return c.height
}

// BlockTime implements core.Context
func (c *Context) BlockTime() int64 {
	return c.time
}

// ContractAddress implements core.Context
func (c *Context) ContractAddress() core.Address {
	return c.contract
}

// Store implements core.Context
func (c *Context) Store() state.TxStore {
	return c.store
}

// Log implements core.Context by capturing the event
func (c *Context) Log(event string, keyValues ...any) {
	c.Events = append(c.Events, Event{Name: event, KeyValues: keyValues})
}
