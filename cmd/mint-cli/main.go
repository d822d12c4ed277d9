package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/env"
	"github.com/govm-net/nftmint/state"

	// Store backends register themselves with the state registry
	_ "github.com/govm-net/nftmint/state/badgerstore"
	_ "github.com/govm-net/nftmint/state/db"
)

var (
	storeBackend string
	storePath    string
	contractAddr string
)

var rootCmd = &cobra.Command{
	Use:   "mint-cli",
	Short: "NFT mint contract command line tool",
	Long: `NFT mint contract command line tool for instantiating, executing and
querying a fixed-supply mint contract over a local state store.
Complete documentation is available at https://github.com/govm-net/nftmint`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "db", "State store backend (db or badger)")
	rootCmd.PersistentFlags().StringVar(&storePath, "path", "./mint-state", "State store path")
	rootCmd.PersistentFlags().StringVar(&contractAddr, "contract", "00000000000000000000000000000000000000ff", "Contract address")

	rootCmd.AddCommand(instantiateCmd)
	rootCmd.AddCommand(executeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(messagesCmd)
}

// openEnv opens the configured store backend and wraps it in a host
// environment for the configured contract address
func openEnv() (*env.Env, error) {
	contract, err := core.AddressFromString(contractAddr)
	if err != nil {
		return nil, fmt.Errorf("invalid contract address: %w", err)
	}

	params := map[string]any{}
	switch state.BackendType(storeBackend) {
	case state.DBBackendType:
		params["db_path"] = storePath
	case state.BadgerBackendType:
		params["path"] = storePath
	}
	store, err := state.Open(state.BackendType(storeBackend), params)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	return env.New(store, contract), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
