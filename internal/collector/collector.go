package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"StockScout/internal/calculator"
	"StockScout/internal/model"
)

// ErrNoData marks a symbol the provider has no usable history for. The
// caller drops the symbol and continues the batch.
var ErrNoData = errors.New("no data for symbol")

// DefaultHistoryDays covers two years of daily bars.
const DefaultHistoryDays = 504

// Collector assembles StockMetrics from raw provider data.
type Collector struct {
	Fetcher     Fetcher
	HistoryDays int
	Log         zerolog.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, historyDays int, log zerolog.Logger) *Collector {
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}
	return &Collector{Fetcher: fetcher, HistoryDays: historyDays, Log: log}
}

// Metrics fetches the price history and fundamentals for one symbol and
// derives the trend returns. Returns ErrNoData when the history is empty.
func (c *Collector) Metrics(ctx context.Context, symbol string) (*model.StockMetrics, error) {
	bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, c.HistoryDays)
	if err != nil {
		return nil, fmt.Errorf("fetch history for %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, symbol)
	}

	fund, err := c.Fetcher.FetchFundamentals(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch fundamentals for %s: %w", symbol, err)
	}

	ret1y, ret2y, err := calculator.CalculateTrendReturns(bars)
	if err != nil {
		return nil, fmt.Errorf("derive returns for %s: %w", symbol, err)
	}

	m := &model.StockMetrics{
		Symbol:        symbol,
		Name:          fund.Name,
		Sector:        fund.Sector,
		Price:         bars[len(bars)-1].Close,
		TrailingPE:    fund.TrailingPE,
		ForwardPE:     fund.ForwardPE,
		PriceToBook:   fund.PriceToBook,
		DividendYield: fund.DividendYield,
		Beta:          fund.Beta,
		High52w:       fund.High52w,
		Low52w:        fund.Low52w,
		MarketCap:     fund.MarketCap,
		AvgVolume:     fund.AvgVolume,
		Return1Y:      ret1y,
		Return2Y:      ret2y,
		FetchedAt:     time.Now(),
	}
	if m.Name == "" {
		m.Name = symbol
	}
	if m.Sector == "" {
		m.Sector = "Unknown"
	}

	// 52-week range fallback from the fetched history
	if m.High52w == nil || m.Low52w == nil {
		if high, low, err := calculator.Calculate52WeekRange(bars); err != nil {
			c.Log.Warn().Err(err).Str("symbol", symbol).Msg("52-week range fallback failed")
		} else {
			if m.High52w == nil {
				m.High52w = &high
			}
			if m.Low52w == nil {
				m.Low52w = &low
			}
		}
	}

	return m, nil
}
