package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/api"
	"github.com/govm-net/nftmint/core"
	"github.com/govm-net/nftmint/mint"
)

var (
	executeMsg    string
	executeSender string
	executeFunds  []string
)

var executeCmd = &cobra.Command{
	Use:   "execute",
	Short: "Run a state-mutating call on the contract",
	Long: `Run a state-mutating call on the contract, attaching funds from the
sender's bank balance.
Example: mint-cli execute -s <sender> -f 5uom -m '{"mint":{"owner":"<addr>"}}'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sender, err := core.AddressFromString(executeSender)
		if err != nil {
			return fmt.Errorf("invalid sender address: %w", err)
		}

		var funds []core.Coin
		for _, f := range executeFunds {
			coin, err := core.ParseCoin(f)
			if err != nil {
				return fmt.Errorf("invalid funds: %w", err)
			}
			funds = append(funds, coin)
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Store().Close()

		slog.Info("executing contract call", "sender", sender, "funds", funds)

		resp, err := e.Execute(mint.Contract{}, sender, funds, []byte(executeMsg))
		if err != nil {
			return fmt.Errorf("execute failed: %w", err)
		}

		fmt.Println("Call executed successfully!")
		printAttributes(resp)
		return nil
	},
}

func printAttributes(resp *api.Response) {
	for _, attr := range resp.Attributes {
		fmt.Printf("  %s: %s\n", attr.Key, attr.Value)
	}
}

func init() {
	executeCmd.Flags().StringVarP(&executeMsg, "msg", "m", "", "Execute message as JSON (required)")
	executeCmd.Flags().StringVarP(&executeSender, "sender", "s", "", "Sender address (required)")
	executeCmd.Flags().StringSliceVarP(&executeFunds, "funds", "f", nil, "Funds to attach, e.g. 5uom")
	executeCmd.MarkFlagRequired("msg")
	executeCmd.MarkFlagRequired("sender")
}
