// Package core provides the fundamental types shared between the host
// environment and the contract: addresses, coins and the execution context.
package core

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Address represents a blockchain address
type Address [20]byte

// ZeroAddress is an address with all bytes set to zero
var ZeroAddress = Address{}

// String returns the hex string representation of the address
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// IsZero reports whether the address is the zero address
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// AddressFromString converts a hex string to an Address
func AddressFromString(s string) (Address, error) {
	var addr Address

	// Remove 0x prefix if present
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}

	if len(s) != 40 {
		return addr, fmt.Errorf("%w: address must be 20 hex-encoded bytes", ErrInvalidArgument)
	}

	bytes, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	copy(addr[:], bytes)
	return addr, nil
}

// Coin is an amount of the chain's native unit in a named denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount uint64 `json:"amount"`
}

// NewCoin creates a coin from an amount and a denomination
func NewCoin(amount uint64, denom string) Coin {
	return Coin{Denom: denom, Amount: amount}
}

// String renders the coin in the compact amount+denom form, e.g. "5uom"
func (c Coin) String() string {
	return strconv.FormatUint(c.Amount, 10) + c.Denom
}

// ParseCoin parses the compact amount+denom form produced by String
func ParseCoin(s string) (Coin, error) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) {
		return Coin{}, fmt.Errorf("%w: coin must be <amount><denom>, got %q", ErrInvalidArgument, s)
	}
	amount, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return Coin{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Coin{Denom: s[i:], Amount: amount}, nil
}
