package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/core"
)

var (
	bankAddr  string
	bankCoin  string
	bankDenom string
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage host-side bank balances",
}

var bankDepositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Credit an address with coins to spend on mints",
	Long: `Credit an address with coins to spend on mints.
Example: mint-cli bank deposit -a <addr> -c 100uom`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := core.AddressFromString(bankAddr)
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}
		coin, err := core.ParseCoin(bankCoin)
		if err != nil {
			return fmt.Errorf("invalid coin: %w", err)
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Store().Close()

		if err := e.Deposit(addr, coin); err != nil {
			return fmt.Errorf("deposit failed: %w", err)
		}

		balance, err := e.Balance(addr, coin.Denom)
		if err != nil {
			return err
		}
		fmt.Printf("Balance of %s: %d%s\n", addr, balance, coin.Denom)
		return nil
	},
}

var bankBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show an address's balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := core.AddressFromString(bankAddr)
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}

		e, err := openEnv()
		if err != nil {
			return err
		}
		defer e.Store().Close()

		balance, err := e.Balance(addr, bankDenom)
		if err != nil {
			return err
		}
		fmt.Printf("Balance of %s: %d%s\n", addr, balance, bankDenom)
		return nil
	},
}

func init() {
	bankDepositCmd.Flags().StringVarP(&bankAddr, "addr", "a", "", "Account address (required)")
	bankDepositCmd.Flags().StringVarP(&bankCoin, "coin", "c", "", "Coin to deposit, e.g. 100uom (required)")
	bankDepositCmd.MarkFlagRequired("addr")
	bankDepositCmd.MarkFlagRequired("coin")

	bankBalanceCmd.Flags().StringVarP(&bankAddr, "addr", "a", "", "Account address (required)")
	bankBalanceCmd.Flags().StringVarP(&bankDenom, "denom", "d", "uom", "Denomination")
	bankBalanceCmd.MarkFlagRequired("addr")

	bankCmd.AddCommand(bankDepositCmd)
	bankCmd.AddCommand(bankBalanceCmd)
}
