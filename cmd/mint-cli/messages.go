package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govm-net/nftmint/api"
	"github.com/govm-net/nftmint/mint"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List the contract's message surface",
	RunE: func(cmd *cobra.Command, args []string) error {
		execute, err := api.Catalog(mint.ExecuteMsg{})
		if err != nil {
			return err
		}
		query, err := api.Catalog(mint.QueryMsg{})
		if err != nil {
			return err
		}

		fmt.Println("Execute messages:")
		for _, d := range execute {
			fmt.Printf("  %-18s (%s)\n", d.Wire, d.Handler)
		}
		fmt.Println("Query messages:")
		for _, d := range query {
			fmt.Printf("  %-18s (%s)\n", d.Wire, d.Handler)
		}
		return nil
	},
}
