package screener

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"StockScout/internal/model"
	"StockScout/internal/watchlist"
)

// Default minimum scores for a stock to make the result set.
const (
	DefaultMinValueScore = 5
	DefaultMinTrendScore = 2
)

// MetricsSource yields one symbol's metrics per call. A fetch failure only
// affects that symbol.
type MetricsSource interface {
	Metrics(ctx context.Context, symbol string) (*model.StockMetrics, error)
}

// Options control one screening pass. An empty Category screens the union of
// all watchlist categories.
type Options struct {
	Category      string
	MinValueScore int
	MinTrendScore int
}

// DefaultOptions returns the stock screening thresholds.
func DefaultOptions(category string) Options {
	return Options{
		Category:      category,
		MinValueScore: DefaultMinValueScore,
		MinTrendScore: DefaultMinTrendScore,
	}
}

// Screener runs the resolve → fetch → score → filter → sort pipeline.
type Screener struct {
	source  MetricsSource
	workers int
	limiter *rate.Limiter
	log     zerolog.Logger
}

// New creates a Screener. workers bounds concurrent fetches; ratePerSec
// bounds the shared request budget (0 means unlimited).
func New(source MetricsSource, workers int, ratePerSec float64, log zerolog.Logger) *Screener {
	if workers <= 0 {
		workers = 4
	}
	limit := rate.Inf
	if ratePerSec > 0 {
		limit = rate.Limit(ratePerSec)
	}
	return &Screener{
		source:  source,
		workers: workers,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Screen resolves the category's symbols, fetches and scores each one, keeps
// entries meeting both minimum scores, and sorts by combined score
// descending (symbol ascending on ties). Symbols the provider has no data
// for are dropped from the batch, not errors.
func (s *Screener) Screen(ctx context.Context, opts Options) ([]model.ScoredStock, error) {
	symbols, err := watchlist.Resolve(opts.Category)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return []model.ScoredStock{}, nil
	}

	s.log.Info().
		Str("category", categoryLabel(opts.Category)).
		Int("symbols", len(symbols)).
		Msg("screening started")

	fetched, skipped := s.collect(ctx, symbols)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	filtered := make(map[string]int) // filter name -> drop count
	kept := make([]model.ScoredStock, 0, len(fetched))
	for _, m := range fetched {
		scored := Score(m)
		switch {
		case scored.ValueScore < opts.MinValueScore:
			filtered["value"]++
		case scored.TrendScore < opts.MinTrendScore:
			filtered["trend"]++
		default:
			kept = append(kept, scored)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].CombinedScore != kept[j].CombinedScore {
			return kept[i].CombinedScore > kept[j].CombinedScore
		}
		return kept[i].Symbol < kept[j].Symbol
	})

	s.log.Info().
		Int("fetched", len(fetched)).
		Int("skipped", skipped).
		Int("kept", len(kept)).
		Interface("filters", filtered).
		Msg("screening completed")

	return kept, nil
}

// collect fetches metrics for all symbols through a bounded worker pool. A
// per-symbol failure is logged and counted; it never aborts other fetches.
func (s *Screener) collect(ctx context.Context, symbols []string) ([]model.StockMetrics, int) {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		out     = make([]model.StockMetrics, 0, len(symbols))
		skipped int
	)

	jobs := make(chan string)
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for symbol := range jobs {
				if err := s.limiter.Wait(ctx); err != nil {
					return
				}
				m, err := s.source.Metrics(ctx, symbol)
				if err != nil {
					s.log.Warn().Err(err).Str("symbol", symbol).Msg("symbol skipped")
					mu.Lock()
					skipped++
					mu.Unlock()
					continue
				}
				s.log.Debug().Str("symbol", symbol).Msg("analyzed")
				mu.Lock()
				out = append(out, *m)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, symbol := range symbols {
		select {
		case jobs <- symbol:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return out, skipped
}

func categoryLabel(category string) string {
	if category == "" {
		return "all"
	}
	return category
}
