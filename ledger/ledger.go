// Package ledger implements the token ownership ledger: the base
// non-fungible-token capability the mint contract builds on. It owns
// the token records, the contract info, the minter record and the
// token count, and keeps the count in lockstep with the number of
// token records. All operations work against a state.Store and rely
// on the caller's transaction boundary for atomicity.
package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/state"
)

// Storage keys. Token and operator records hang off fixed prefixes so
// the singletons and the per-token entries never overlap.
const (
	contractInfoKey   = "nft/contract_info"
	minterKey         = "nft/minter"
	tokenCountKey     = "nft/num_tokens"
	tokenKeyPrefix    = "nft/tokens/"
	operatorKeyPrefix = "nft/operators/"
)

// ContractInfo holds the collection-level metadata
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Approval grants a spender the right to transfer one token
type Approval struct {
	Spender string     `json:"spender"`
	Expires Expiration `json:"expires"`
}

// TokenInfo is one token record in the ledger
type TokenInfo struct {
	Owner     string          `json:"owner"`
	TokenURI  string          `json:"token_uri"`
	Extension json.RawMessage `json:"extension,omitempty"`
	Approvals []Approval      `json:"approvals"`
}

func tokenKey(id string) string {
	return tokenKeyPrefix + id
}

func operatorKey(owner, operator core.Address) string {
	return operatorKeyPrefix + owner.String() + "/" + operator.String()
}

// Initialize writes the collection metadata and the minter record and
// zeroes the token count
func Initialize(s state.Store, info ContractInfo, minter core.Address) error {
	if err := s.Set(contractInfoKey, info); err != nil {
		return err
	}
	if err := s.Set(minterKey, minter.String()); err != nil {
		return err
	}
	return s.Set(tokenCountKey, uint64(0))
}

// GetContractInfo returns the collection metadata
func GetContractInfo(s state.Store) (ContractInfo, error) {
	var info ContractInfo
	found, err := s.Get(contractInfoKey, &info)
	if err != nil {
		return ContractInfo{}, err
	}
	if !found {
		return ContractInfo{}, core.ErrNotInitialized
	}
	return info, nil
}

// Minter returns the address allowed to administer the collection
func Minter(s state.Store) (core.Address, error) {
	var raw string
	found, err := s.Get(minterKey, &raw)
	if err != nil {
		return core.ZeroAddress, err
	}
	if !found {
		return core.ZeroAddress, core.ErrNotInitialized
	}
	return core.AddressFromString(raw)
}

// Count returns the number of tokens in the ledger. A missing record
// counts as zero so queries work against an uninitialized store.
func Count(s state.Store) (uint64, error) {
	var count uint64
	if _, err := s.Get(tokenCountKey, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// Token returns the record for one token id
func Token(s state.Store, id string) (TokenInfo, error) {
	var tok TokenInfo
	found, err := s.Get(tokenKey(id), &tok)
	if err != nil {
		return TokenInfo{}, err
	}
	if !found {
		return TokenInfo{}, fmt.Errorf("%w: %s", core.ErrTokenNotFound, id)
	}
	return tok, nil
}

// Mint inserts a new token record and increments the token count by
// exactly one. The id must not collide with any existing token.
func Mint(s state.Store, id string, tok TokenInfo) error {
	exists, err := s.Has(tokenKey(id))
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", core.ErrDuplicateToken, id)
	}

	if err := s.Set(tokenKey(id), tok); err != nil {
		return err
	}

	count, err := Count(s)
	if err != nil {
		return err
	}
	return s.Set(tokenCountKey, count+1)
}

// Transfer moves ownership of a token to recipient and clears its
// approvals. The sender must be the owner, hold an unexpired approval
// for the token, or be an unexpired operator of the owner.
func Transfer(s state.Store, height uint64, now int64, sender, recipient core.Address, id string) (TokenInfo, error) {
	tok, err := Token(s, id)
	if err != nil {
		return TokenInfo{}, err
	}

	ok, err := canSend(s, height, now, sender, tok)
	if err != nil {
		return TokenInfo{}, err
	}
	if !ok {
		return TokenInfo{}, fmt.Errorf("%w: %s cannot send token %s", core.ErrUnauthorized, sender, id)
	}

	tok.Owner = recipient.String()
	tok.Approvals = nil
	if err := s.Set(tokenKey(id), tok); err != nil {
		return TokenInfo{}, err
	}
	return tok, nil
}

// Approve grants spender the right to transfer the token until expires.
// Only the owner or an operator of the owner may approve, and an
// already-expired expiration is rejected.
func Approve(s state.Store, height uint64, now int64, sender, spender core.Address, id string, expires Expiration) error {
	tok, err := Token(s, id)
	if err != nil {
		return err
	}

	ok, err := canApprove(s, height, now, sender, tok)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s cannot approve token %s", core.ErrUnauthorized, sender, id)
	}

	if expires.IsExpired(height, now) {
		return core.ErrExpired
	}

	// Replace any previous approval for the same spender
	approvals := tok.Approvals[:0]
	for _, a := range tok.Approvals {
		if a.Spender != spender.String() {
			approvals = append(approvals, a)
		}
	}
	tok.Approvals = append(approvals, Approval{Spender: spender.String(), Expires: expires})
	return s.Set(tokenKey(id), tok)
}

// Revoke removes the approval previously granted to spender
func Revoke(s state.Store, height uint64, now int64, sender, spender core.Address, id string) error {
	tok, err := Token(s, id)
	if err != nil {
		return err
	}

	ok, err := canApprove(s, height, now, sender, tok)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s cannot revoke on token %s", core.ErrUnauthorized, sender, id)
	}

	approvals := tok.Approvals[:0]
	removed := false
	for _, a := range tok.Approvals {
		if a.Spender == spender.String() {
			removed = true
			continue
		}
		approvals = append(approvals, a)
	}
	if !removed {
		return fmt.Errorf("%w: %s", core.ErrApprovalNotFound, spender)
	}
	tok.Approvals = approvals
	return s.Set(tokenKey(id), tok)
}

// ApproveAll makes operator an operator for every token owned by sender
func ApproveAll(s state.Store, height uint64, now int64, sender, operator core.Address, expires Expiration) error {
	if expires.IsExpired(height, now) {
		return core.ErrExpired
	}
	return s.Set(operatorKey(sender, operator), expires)
}

// RevokeAll removes an operator grant
func RevokeAll(s state.Store, sender, operator core.Address) error {
	return s.Delete(operatorKey(sender, operator))
}

// IsOperator reports whether operator holds an unexpired operator grant
// from owner
func IsOperator(s state.Store, height uint64, now int64, owner, operator core.Address) (bool, error) {
	var expires Expiration
	found, err := s.Get(operatorKey(owner, operator), &expires)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return !expires.IsExpired(height, now), nil
}

// canApprove allows the owner and unexpired operators of the owner
func canApprove(s state.Store, height uint64, now int64, sender core.Address, tok TokenInfo) (bool, error) {
	if tok.Owner == sender.String() {
		return true, nil
	}
	owner, err := core.AddressFromString(tok.Owner)
	if err != nil {
		return false, err
	}
	return IsOperator(s, height, now, owner, sender)
}

// canSend additionally allows holders of an unexpired per-token approval
func canSend(s state.Store, height uint64, now int64, sender core.Address, tok TokenInfo) (bool, error) {
	for _, a := range tok.Approvals {
		if a.Spender == sender.String() && !a.Expires.IsExpired(height, now) {
			return true, nil
		}
	}
	return canApprove(s, height, now, sender, tok)
}
