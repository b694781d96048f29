package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"StockScout/internal/notifier"
	"StockScout/internal/scheduler"
)

var watchRunNow bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the screen on a schedule and deliver results via Telegram",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.ValidateWatch(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		sched := scheduler.NewScheduler(ctx, newScreener(), tn,
			cfg.Watch.Categories, cfg.Watch.TopN,
			cfg.Screener.MinValueScore, cfg.Screener.MinTrendScore, log)

		if err := sched.Register(cfg.Watch.Cron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Str("cron", cfg.Watch.Cron).Msg("watch mode running, press Ctrl+C to stop")

		if watchRunNow {
			go sched.RunNow()
		}

		<-ctx.Done()
		log.Info().Msg("shutdown signal received, stopping")
		return nil
	},
}

func init() {
	watchCmd.Flags().BoolVar(&watchRunNow, "run-now", false, "run one screening pass immediately on start")
	rootCmd.AddCommand(watchCmd)
}
