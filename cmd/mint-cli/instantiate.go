package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/mint"
)

var (
	instantiateMsg    string
	instantiateSender string
)

var instantiateCmd = &cobra.Command{
	Use:   "instantiate",
	Short: "Perform the one-time contract setup",
	Long: `Perform the one-time contract setup.
Example: mint-cli instantiate -s <sender> -m '{"name":"Drop","symbol":"DROP","minter":"<addr>","mint_price":{"denom":"uom","amount":5},"max_mints":100,"token_uri":"ipfs://..."}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sender, err := core.AddressFromString(instantiateSender)
		if err != nil {
			return fmt.Errorf("invalid sender address: %w", err)
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Store().Close()

		slog.Info("instantiating contract", "sender", sender)

		resp, err := e.Instantiate(mint.Contract{}, sender, []byte(instantiateMsg))
		if err != nil {
			return fmt.Errorf("instantiate failed: %w", err)
		}

		fmt.Println("Contract instantiated successfully!")
		printAttributes(resp)
		return nil
	},
}

func init() {
	instantiateCmd.Flags().StringVarP(&instantiateMsg, "msg", "m", "", "Instantiate message as JSON (required)")
	instantiateCmd.Flags().StringVarP(&instantiateSender, "sender", "s", "", "Sender address (required)")
	instantiateCmd.MarkFlagRequired("msg")
	instantiateCmd.MarkFlagRequired("sender")
}
