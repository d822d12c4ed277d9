package mint

import (
	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/state"
)

// Storage keys for the contract's own records. The token ledger keeps
// its records under its own namespace; these never overlap it.
const (
	mintConfigKey     = "mint/config"
	mintingAllowedKey = "mint/minting_allowed"
)

// MintConfig is the admin-set mint configuration, written once at
// instantiate and mutable afterwards only through SetMintConfig.
type MintConfig struct {
	MintPrice core.Coin `json:"mint_price"`
	MaxMints  uint64    `json:"max_mints"`
	TokenURI  string    `json:"token_uri"`
}

func loadConfig(s state.Store) (MintConfig, error) {
	var cfg MintConfig
	found, err := s.Get(mintConfigKey, &cfg)
	if err != nil {
		return MintConfig{}, err
	}
	if !found {
		return MintConfig{}, core.ErrNotInitialized
	}
	return cfg, nil
}

func saveConfig(s state.Store, cfg MintConfig) error {
	return s.Set(mintConfigKey, cfg)
}

func loadMintingAllowed(s state.Store) (bool, error) {
	var allowed bool
	found, err := s.Get(mintingAllowedKey, &allowed)
	if err != nil {
		return false, err
	}
	if !found {
		return false, core.ErrNotInitialized
	}
	return allowed, nil
}

func saveMintingAllowed(s state.Store, allowed bool) error {
	return s.Set(mintingAllowedKey, allowed)
}
