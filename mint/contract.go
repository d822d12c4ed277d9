// Package mint implements a fixed-supply, fixed-price NFT mint contract
// on top of the token ledger. An administrator configures the unit
// price, supply cap and metadata URI at instantiate time; callers mint
// sequentially numbered tokens by attaching sufficient payment. Every
// execute call runs inside one store transaction, so a failed call
// leaves no partial state.
package mint

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/govm-net/nftmint/api"
	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/ledger"
	"github.com/govm-net/nftmint/state"
)

// Contract implements api.Contract for the mint contract
type Contract struct{}

var _ api.Contract = Contract{}

// Instantiate implements api.Contract
func (Contract) Instantiate(ctx core.Context, raw []byte) (*api.Response, error) {
	var msg InstantiateMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	return Instantiate(ctx, msg)
}

// Execute implements api.Contract
func (Contract) Execute(ctx core.Context, raw []byte) (*api.Response, error) {
	var msg ExecuteMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	if _, err := api.OneOf(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownMessage, err)
	}
	return Execute(ctx, msg)
}

// Query implements api.Contract
func (Contract) Query(ctx core.Context, raw []byte) ([]byte, error) {
	var msg QueryMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidArgument, err)
	}
	if _, err := api.OneOf(&msg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrUnknownMessage, err)
	}
	return Query(ctx, msg)
}

// Instantiate performs the one-time contract setup: it validates the
// mint configuration, initializes the token ledger and persists the
// config with minting enabled. Validation failures leave no state.
func Instantiate(ctx core.Context, msg InstantiateMsg) (*api.Response, error) {
	if err := validateConfig(msg.MintPrice, msg.MaxMints); err != nil {
		return nil, err
	}
	if msg.Name == "" || msg.Symbol == "" {
		return nil, fmt.Errorf("%w: name and symbol must not be empty", core.ErrInvalidConfig)
	}
	if msg.TokenURI == "" {
		return nil, fmt.Errorf("%w: token_uri must not be empty", core.ErrInvalidConfig)
	}
	minter, err := core.AddressFromString(msg.Minter)
	if err != nil {
		return nil, fmt.Errorf("%w: bad minter address: %v", core.ErrInvalidConfig, err)
	}

	err = ctx.Store().Transaction(func(s state.Store) error {
		exists, err := s.Has(mintConfigKey)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: contract already instantiated", core.ErrInvalidConfig)
		}

		if err := ledger.Initialize(s, ledger.ContractInfo{Name: msg.Name, Symbol: msg.Symbol}, minter); err != nil {
			return err
		}
		if err := saveConfig(s, MintConfig{
			MintPrice: msg.MintPrice,
			MaxMints:  msg.MaxMints,
			TokenURI:  msg.TokenURI,
		}); err != nil {
			return err
		}
		return saveMintingAllowed(s, true)
	})
	if err != nil {
		return nil, err
	}

	ctx.Log("instantiate",
		"name", msg.Name,
		"symbol", msg.Symbol,
		"minter", minter,
		"max_mints", msg.MaxMints,
		"mint_price", msg.MintPrice)

	return api.NewResponse().
		Add("action", "instantiate").
		Add("minter", minter).
		Add("max_mints", msg.MaxMints), nil
}

// Execute dispatches a state-mutating call. The whole call runs in one
// store transaction: any error discards every write.
func Execute(ctx core.Context, msg ExecuteMsg) (*api.Response, error) {
	var resp *api.Response
	err := ctx.Store().Transaction(func(s state.Store) error {
		var err error
		switch {
		case msg.Mint != nil:
			resp, err = executeMint(ctx, s, *msg.Mint)
		case msg.SetMintConfig != nil:
			resp, err = executeSetMintConfig(ctx, s, *msg.SetMintConfig)
		case msg.ToggleMinting != nil:
			resp, err = executeToggleMinting(ctx, s)
		case msg.TransferNft != nil:
			resp, err = executeTransferNft(ctx, s, *msg.TransferNft)
		case msg.Approve != nil:
			resp, err = executeApprove(ctx, s, *msg.Approve)
		case msg.Revoke != nil:
			resp, err = executeRevoke(ctx, s, *msg.Revoke)
		case msg.ApproveAll != nil:
			resp, err = executeApproveAll(ctx, s, *msg.ApproveAll)
		case msg.RevokeAll != nil:
			resp, err = executeRevokeAll(ctx, s, *msg.RevokeAll)
		default:
			err = core.ErrUnknownMessage
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// executeMint creates the next token for the payment attached to the
// call. Token ids are the decimal form of the pre-increment count, so
// ids never collide while tokens are never destroyed.
func executeMint(ctx core.Context, s state.Store, msg MintMsg) (*api.Response, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}

	allowed, err := loadMintingAllowed(s)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, core.ErrMintingDisabled
	}

	count, err := ledger.Count(s)
	if err != nil {
		return nil, err
	}
	if count >= cfg.MaxMints {
		return nil, core.ErrSoldOut
	}

	if !paymentCovers(ctx.Funds(), cfg.MintPrice) {
		return nil, fmt.Errorf("%w: mint requires %s", core.ErrInsufficientPayment, cfg.MintPrice)
	}

	owner, err := core.AddressFromString(msg.Owner)
	if err != nil {
		return nil, fmt.Errorf("%w: bad owner address: %v", core.ErrInvalidArgument, err)
	}

	tokenID := strconv.FormatUint(count, 10)
	err = ledger.Mint(s, tokenID, ledger.TokenInfo{
		Owner:     owner.String(),
		TokenURI:  cfg.TokenURI,
		Extension: msg.Extension,
	})
	if err != nil {
		return nil, err
	}

	ctx.Log("mint",
		"minter", ctx.Sender(),
		"owner", owner,
		"token_id", tokenID)

	return api.NewResponse().
		Add("action", "mint").
		Add("minter", ctx.Sender()).
		Add("token_id", tokenID), nil
}

// executeSetMintConfig updates the price and supply cap, minter only
func executeSetMintConfig(ctx core.Context, s state.Store, msg SetMintConfigMsg) (*api.Response, error) {
	if err := requireMinter(ctx, s); err != nil {
		return nil, err
	}
	if err := validateConfig(msg.Price, msg.MaxMints); err != nil {
		return nil, err
	}

	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	cfg.MintPrice = msg.Price
	cfg.MaxMints = msg.MaxMints
	if err := saveConfig(s, cfg); err != nil {
		return nil, err
	}

	ctx.Log("set_mint_config", "price", msg.Price, "max_mints", msg.MaxMints)

	return api.NewResponse().
		Add("action", "set_mint_config").
		Add("price", msg.Price).
		Add("max_mints", msg.MaxMints), nil
}

// executeToggleMinting flips the minting_allowed flag, minter only
func executeToggleMinting(ctx core.Context, s state.Store) (*api.Response, error) {
	if err := requireMinter(ctx, s); err != nil {
		return nil, err
	}

	allowed, err := loadMintingAllowed(s)
	if err != nil {
		return nil, err
	}
	allowed = !allowed
	if err := saveMintingAllowed(s, allowed); err != nil {
		return nil, err
	}

	ctx.Log("toggle_minting", "minting_allowed", allowed)

	return api.NewResponse().
		Add("action", "toggle_minting").
		Add("minting_allowed", allowed), nil
}

func executeTransferNft(ctx core.Context, s state.Store, msg TransferNftMsg) (*api.Response, error) {
	recipient, err := core.AddressFromString(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: bad recipient address: %v", core.ErrInvalidArgument, err)
	}

	if _, err := ledger.Transfer(s, ctx.BlockHeight(), ctx.BlockTime(), ctx.Sender(), recipient, msg.TokenID); err != nil {
		return nil, err
	}

	ctx.Log("transfer_nft",
		"sender", ctx.Sender(),
		"recipient", recipient,
		"token_id", msg.TokenID)

	return api.NewResponse().
		Add("action", "transfer_nft").
		Add("sender", ctx.Sender()).
		Add("recipient", recipient).
		Add("token_id", msg.TokenID), nil
}

func executeApprove(ctx core.Context, s state.Store, msg ApproveMsg) (*api.Response, error) {
	spender, err := core.AddressFromString(msg.Spender)
	if err != nil {
		return nil, fmt.Errorf("%w: bad spender address: %v", core.ErrInvalidArgument, err)
	}

	var expires ledger.Expiration
	if msg.Expires != nil {
		expires = *msg.Expires
	}
	if err := ledger.Approve(s, ctx.BlockHeight(), ctx.BlockTime(), ctx.Sender(), spender, msg.TokenID, expires); err != nil {
		return nil, err
	}

	ctx.Log("approve", "sender", ctx.Sender(), "spender", spender, "token_id", msg.TokenID)

	return api.NewResponse().
		Add("action", "approve").
		Add("sender", ctx.Sender()).
		Add("spender", spender).
		Add("token_id", msg.TokenID), nil
}

func executeRevoke(ctx core.Context, s state.Store, msg RevokeMsg) (*api.Response, error) {
	spender, err := core.AddressFromString(msg.Spender)
	if err != nil {
		return nil, fmt.Errorf("%w: bad spender address: %v", core.ErrInvalidArgument, err)
	}

	if err := ledger.Revoke(s, ctx.BlockHeight(), ctx.BlockTime(), ctx.Sender(), spender, msg.TokenID); err != nil {
		return nil, err
	}

	ctx.Log("revoke", "sender", ctx.Sender(), "spender", spender, "token_id", msg.TokenID)

	return api.NewResponse().
		Add("action", "revoke").
		Add("sender", ctx.Sender()).
		Add("spender", spender).
		Add("token_id", msg.TokenID), nil
}

func executeApproveAll(ctx core.Context, s state.Store, msg ApproveAllMsg) (*api.Response, error) {
	operator, err := core.AddressFromString(msg.Operator)
	if err != nil {
		return nil, fmt.Errorf("%w: bad operator address: %v", core.ErrInvalidArgument, err)
	}

	var expires ledger.Expiration
	if msg.Expires != nil {
		expires = *msg.Expires
	}
	if err := ledger.ApproveAll(s, ctx.BlockHeight(), ctx.BlockTime(), ctx.Sender(), operator, expires); err != nil {
		return nil, err
	}

	ctx.Log("approve_all", "sender", ctx.Sender(), "operator", operator)

	return api.NewResponse().
		Add("action", "approve_all").
		Add("sender", ctx.Sender()).
		Add("operator", operator), nil
}

func executeRevokeAll(ctx core.Context, s state.Store, msg RevokeAllMsg) (*api.Response, error) {
	operator, err := core.AddressFromString(msg.Operator)
	if err != nil {
		return nil, fmt.Errorf("%w: bad operator address: %v", core.ErrInvalidArgument, err)
	}

	if err := ledger.RevokeAll(s, ctx.Sender(), operator); err != nil {
		return nil, err
	}

	ctx.Log("revoke_all", "sender", ctx.Sender(), "operator", operator)

	return api.NewResponse().
		Add("action", "revoke_all").
		Add("sender", ctx.Sender()).
		Add("operator", operator), nil
}

// requireMinter fails with ErrUnauthorized unless the caller is the
// configured minter
func requireMinter(ctx core.Context, s state.Store) error {
	minter, err := ledger.Minter(s)
	if err != nil {
		return err
	}
	if ctx.Sender() != minter {
		return core.ErrUnauthorized
	}
	return nil
}

func validateConfig(price core.Coin, maxMints uint64) error {
	if maxMints == 0 {
		return fmt.Errorf("%w: max_mints must be positive", core.ErrInvalidConfig)
	}
	if price.Denom == "" {
		return fmt.Errorf("%w: mint price denom must not be empty", core.ErrInvalidConfig)
	}
	return nil
}

// paymentCovers reports whether the attached funds contain a coin of
// the price denomination with at least the price amount. Overpayment is
// accepted and retained; there is no refund path.
func paymentCovers(funds []core.Coin, price core.Coin) bool {
	if price.Amount == 0 {
		return true
	}
	for _, c := range funds {
		if c.Denom == price.Denom && c.Amount >= price.Amount {
			return true
		}
	}
	return false
}
