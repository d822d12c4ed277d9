package core

import (
	"github.com/govm-net/nftmint/state"
)

// Context represents the execution context of a single contract call.
// It provides access to blockchain data and the contract's state store.
// The host serializes calls, so implementations need no internal locking
// beyond what their store backend requires.
type Context interface {
	// Sender returns the address of the account that called the contract
	Sender() Address

	// Funds returns the coins attached to the current call
	Funds() []Coin

	// BlockHeight returns the current block height
	BlockHeight() uint64

	// BlockTime returns the timestamp of the current block
	BlockTime() int64

	// ContractAddress returns the address of the current contract
	ContractAddress() Address

	// Store returns the contract's persistent state store
	Store() state.TxStore

	// Log emits an event to the blockchain
	Log(event string, keyValues ...any)
}
