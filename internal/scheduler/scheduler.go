package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"StockScout/internal/notifier"
	"StockScout/internal/report"
	"StockScout/internal/screener"
	"StockScout/internal/watchlist"
)

// Scheduler re-runs the screen on a cron schedule and delivers the top
// results through the notifier.
type Scheduler struct {
	Cron       *cron.Cron
	Screener   *screener.Screener
	Notifier   *notifier.TelegramNotifier
	Categories []string // empty means the union of all categories
	TopN       int
	MinValue   int
	MinTrend   int
	Ctx        context.Context
	Log        zerolog.Logger
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, scr *screener.Screener, tn *notifier.TelegramNotifier, categories []string, topN, minValue, minTrend int, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Screener:   scr,
		Notifier:   tn,
		Categories: categories,
		TopN:       topN,
		MinValue:   minValue,
		MinTrend:   minTrend,
		Ctx:        ctx,
		Log:        log,
	}
}

// Register registers the screening task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.screenTask); err != nil {
		return fmt.Errorf("register screen task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Info().Msg("scheduler stopped")
}

// RunNow executes the screening task immediately (manual trigger).
func (s *Scheduler) RunNow() {
	s.screenTask()
}

func (s *Scheduler) screenTask() {
	categories := s.Categories
	if len(categories) == 0 {
		categories = []string{""}
	}

	for _, category := range categories {
		opts := screener.Options{
			Category:      category,
			MinValueScore: s.MinValue,
			MinTrendScore: s.MinTrend,
		}
		results, err := s.Screener.Screen(s.Ctx, opts)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			s.Log.Error().Err(err).Str("category", category).Msg("scheduled screen failed")
			s.trySend(fmt.Sprintf("❌ screening failed: %v", err))
			continue
		}
		s.trySend(report.FormatTelegram(category, results, s.TopN))
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch {
	case command == "/categories":
		return "Categories:\n• " + strings.Join(watchlist.Names(), "\n• ")

	case command == "/screen" || strings.HasPrefix(command, "/screen "):
		category := strings.TrimSpace(strings.TrimPrefix(command, "/screen"))
		opts := screener.Options{
			Category:      category,
			MinValueScore: s.MinValue,
			MinTrendScore: s.MinTrend,
		}
		results, err := s.Screener.Screen(s.Ctx, opts)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return report.FormatTelegram(category, results, s.TopN)

	default:
		return "Available commands:\n• /screen [category]\n• /categories"
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		s.Log.Error().Err(err).Msg("send notification")
	}
}
