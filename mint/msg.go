package mint

import (
	"encoding/json"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/ledger"
)

// InstantiateMsg is the one-time setup message
type InstantiateMsg struct {
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Minter    string    `json:"minter"`
	MintPrice core.Coin `json:"mint_price"`
	MaxMints  uint64    `json:"max_mints"`
	TokenURI  string    `json:"token_uri"`
}

// ExecuteMsg is the union of state-mutating calls. Exactly one variant
// must be set.
type ExecuteMsg struct {
	Mint          *MintMsg          `json:"mint,omitempty"`
	SetMintConfig *SetMintConfigMsg `json:"set_mint_config,omitempty"`
	ToggleMinting *ToggleMintingMsg `json:"toggle_minting,omitempty"`
	TransferNft   *TransferNftMsg   `json:"transfer_nft,omitempty"`
	Approve       *ApproveMsg       `json:"approve,omitempty"`
	Revoke        *RevokeMsg        `json:"revoke,omitempty"`
	ApproveAll    *ApproveAllMsg    `json:"approve_all,omitempty"`
	RevokeAll     *RevokeAllMsg     `json:"revoke_all,omitempty"`
}

// MintMsg mints the next token to owner against the attached payment
type MintMsg struct {
	Owner     string          `json:"owner"`
	Extension json.RawMessage `json:"extension,omitempty"`
}

// SetMintConfigMsg updates the price and supply cap, minter only
type SetMintConfigMsg struct {
	Price    core.Coin `json:"price"`
	MaxMints uint64    `json:"max_mints"`
}

// ToggleMintingMsg flips the minting_allowed flag, minter only
type ToggleMintingMsg struct{}

// TransferNftMsg moves a token to recipient
type TransferNftMsg struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

// ApproveMsg grants spender transfer rights on one token
type ApproveMsg struct {
	Spender string             `json:"spender"`
	TokenID string             `json:"token_id"`
	Expires *ledger.Expiration `json:"expires,omitempty"`
}

// RevokeMsg removes a previously granted approval
type RevokeMsg struct {
	Spender string `json:"spender"`
	TokenID string `json:"token_id"`
}

// ApproveAllMsg makes operator an operator for all the sender's tokens
type ApproveAllMsg struct {
	Operator string             `json:"operator"`
	Expires  *ledger.Expiration `json:"expires,omitempty"`
}

// RevokeAllMsg removes an operator grant
type RevokeAllMsg struct {
	Operator string `json:"operator"`
}

// QueryMsg is the union of read-only calls. Exactly one variant must
// be set.
type QueryMsg struct {
	NftDetails    *NftDetailsQuery    `json:"nft_details,omitempty"`
	NumTokens     *NumTokensQuery     `json:"num_tokens,omitempty"`
	OwnerOf       *OwnerOfQuery       `json:"owner_of,omitempty"`
	ContractInfo  *ContractInfoQuery  `json:"contract_info,omitempty"`
	MintingStatus *MintingStatusQuery `json:"minting_status,omitempty"`
}

// NftDetailsQuery asks for the mint configuration
type NftDetailsQuery struct{}

// NumTokensQuery asks for the number of tokens minted so far
type NumTokensQuery struct{}

// OwnerOfQuery asks for the owner of one token
type OwnerOfQuery struct {
	TokenID        string `json:"token_id"`
	IncludeExpired bool   `json:"include_expired,omitempty"`
}

// ContractInfoQuery asks for the collection name and symbol
type ContractInfoQuery struct{}

// MintingStatusQuery asks whether minting is currently enabled
type MintingStatusQuery struct{}

// NftDetailsResponse is the answer to NftDetailsQuery
type NftDetailsResponse struct {
	TokenURI  string    `json:"token_uri"`
	MintPrice core.Coin `json:"mint_price"`
	MaxMints  uint64    `json:"max_mints"`
}

// NumTokensResponse is the answer to NumTokensQuery
type NumTokensResponse struct {
	Count uint64 `json:"count"`
}

// OwnerOfResponse is the answer to OwnerOfQuery
type OwnerOfResponse struct {
	Owner     string            `json:"owner"`
	Approvals []ledger.Approval `json:"approvals"`
}

// ContractInfoResponse is the answer to ContractInfoQuery
type ContractInfoResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// MintingStatusResponse is the answer to MintingStatusQuery
type MintingStatusResponse struct {
	MintingAllowed bool `json:"minting_allowed"`
}
