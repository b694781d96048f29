package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"StockScout/internal/collector"
	"StockScout/internal/config"
	"StockScout/internal/logging"
	"StockScout/internal/screener"
)

var (
	cfgFile string

	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "screener",
	Short: "Screen recession-proof value stocks",
	Long: `StockScout screens curated defensive watchlists for attractively
valued stocks in an uptrend, scoring each symbol on fundamentals (P/E, P/B,
dividend yield, beta) and price momentum (1y/2y returns).

Run without a subcommand for the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = os.Getenv("CONFIG_PATH")
		}
		if path == "" {
			path = "configs/config.yaml"
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		log = logging.New(cfg.Log.Level, cfg.Log.Format)
		return nil
	},
	RunE: runInteractive,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yaml)")
}

// newScreener wires the live provider into a Screener from config.
func newScreener() *screener.Screener {
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Info().Str("source", fetcher.Name()).Msg("data source ready")
	col := collector.NewCollector(fetcher, cfg.Fetch.HistoryDays, log)
	return screener.New(col, cfg.Fetch.Workers, cfg.Fetch.RatePerSec, log)
}
