package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"StockScout/internal/watchlist"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the watchlist categories",
	Run: func(cmd *cobra.Command, args []string) {
		for i, name := range watchlist.Names() {
			fmt.Printf("%3d. %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
