package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockScout/internal/report"
	"StockScout/internal/screener"
)

var (
	screenCategory string
	minValueScore  int
	minTrendScore  int
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Run one screening pass and print the result table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Config supplies thresholds unless flags override them.
		if !cmd.Flags().Changed("min-value") {
			minValueScore = cfg.Screener.MinValueScore
		}
		if !cmd.Flags().Changed("min-trend") {
			minTrendScore = cfg.Screener.MinTrendScore
		}

		scr := newScreener()
		results, err := scr.Screen(ctx, screener.Options{
			Category:      screenCategory,
			MinValueScore: minValueScore,
			MinTrendScore: minTrendScore,
		})
		if err != nil {
			return err
		}
		fmt.Print(report.FormatTable(results))
		return nil
	},
}

func init() {
	screenCmd.Flags().StringVarP(&screenCategory, "category", "c", "", "watchlist category (empty screens all)")
	screenCmd.Flags().IntVar(&minValueScore, "min-value", screener.DefaultMinValueScore, "minimum value score")
	screenCmd.Flags().IntVar(&minTrendScore, "min-trend", screener.DefaultMinTrendScore, "minimum trend score")
	rootCmd.AddCommand(screenCmd)
}
