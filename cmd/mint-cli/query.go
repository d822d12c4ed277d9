package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/mint"
)

var queryMsg string

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run a read-only query against the contract",
	Long: `Run a read-only query against the contract.
Example: mint-cli query -m '{"num_tokens":{}}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Store().Close()

		result, err := e.Query(mint.Contract{}, []byte(queryMsg))
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}

		fmt.Println(string(result))
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVarP(&queryMsg, "msg", "m", "", "Query message as JSON (required)")
	queryCmd.MarkFlagRequired("msg")
}
