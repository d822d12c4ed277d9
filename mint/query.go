package mint

import (
	"encoding/json"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/ledger"
	"github.com/govm-net/nftmint/state"
)

// Query dispatches a read-only call and returns the answer as JSON.
// Queries never mutate state, so they run against the store directly.
func Query(ctx core.Context, msg QueryMsg) ([]byte, error) {
	s := ctx.Store()
	switch {
	case msg.NftDetails != nil:
		return queryNftDetails(s)
	case msg.NumTokens != nil:
		return queryNumTokens(s)
	case msg.OwnerOf != nil:
		return queryOwnerOf(ctx, s, *msg.OwnerOf)
	case msg.ContractInfo != nil:
		return queryContractInfo(s)
	case msg.MintingStatus != nil:
		return queryMintingStatus(s)
	default:
		return nil, core.ErrUnknownMessage
	}
}

func queryNftDetails(s state.Store) ([]byte, error) {
	cfg, err := loadConfig(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(NftDetailsResponse{
		TokenURI:  cfg.TokenURI,
		MintPrice: cfg.MintPrice,
		MaxMints:  cfg.MaxMints,
	})
}

func queryNumTokens(s state.Store) ([]byte, error) {
	count, err := ledger.Count(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(NumTokensResponse{Count: count})
}

func queryOwnerOf(ctx core.Context, s state.Store, q OwnerOfQuery) ([]byte, error) {
	tok, err := ledger.Token(s, q.TokenID)
	if err != nil {
		return nil, err
	}

	approvals := []ledger.Approval{}
	for _, a := range tok.Approvals {
		if q.IncludeExpired || !a.Expires.IsExpired(ctx.BlockHeight(), ctx.BlockTime()) {
			approvals = append(approvals, a)
		}
	}
	return json.Marshal(OwnerOfResponse{
		Owner:     tok.Owner,
		Approvals: approvals,
	})
}

func queryContractInfo(s state.Store) ([]byte, error) {
	info, err := ledger.GetContractInfo(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ContractInfoResponse{
		Name:   info.Name,
		Symbol: info.Symbol,
	})
}

func queryMintingStatus(s state.Store) ([]byte, error) {
	allowed, err := loadMintingAllowed(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(MintingStatusResponse{MintingAllowed: allowed})
}
