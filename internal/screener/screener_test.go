package screener

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
	"StockScout/internal/watchlist"
)

// stubSource serves crafted metrics per symbol; symbols without an entry
// fail like a provider miss.
type stubSource struct {
	metrics map[string]model.StockMetrics
}

func (s *stubSource) Metrics(_ context.Context, symbol string) (*model.StockMetrics, error) {
	m, ok := s.metrics[symbol]
	if !ok {
		return nil, fmt.Errorf("no data for symbol: %s", symbol)
	}
	return &m, nil
}

// metricsWithScores builds metrics that produce exactly the given value and
// trend scores (value from P/E / P/B / yield buckets, trend from returns).
func metricsWithScores(symbol string, value, trend int) model.StockMetrics {
	m := model.StockMetrics{Symbol: symbol, Name: symbol, Price: 100}

	// Value: 3s from P/E 10 and P/B 1.0, then 2 from P/B 2.0, 1 from yield.
	switch value {
	case 6:
		m.TrailingPE = fptr(10)
		m.PriceToBook = fptr(1.0)
	case 5:
		m.TrailingPE = fptr(10)
		m.PriceToBook = fptr(2.0)
	case 4:
		m.TrailingPE = fptr(10)
		m.DividendYield = 0.011
	case 7:
		m.TrailingPE = fptr(10)
		m.PriceToBook = fptr(1.0)
		m.DividendYield = 0.011
	case 2:
		m.TrailingPE = fptr(22)
		m.DividendYield = 0.011
	case 0:
		// leave everything unknown
	default:
		panic("unsupported value score in fixture")
	}

	// Trend: 1y bucket (3/2/1) plus 2y bucket (3/2/1).
	switch trend {
	case 6:
		m.Return1Y, m.Return2Y = 25, 40
	case 5:
		m.Return1Y, m.Return2Y = 15, 40
	case 3:
		m.Return1Y, m.Return2Y = 25, -5
	case 2:
		m.Return1Y, m.Return2Y = 15, -5
	case 1:
		m.Return1Y, m.Return2Y = 5, -5
	case 0:
		m.Return1Y, m.Return2Y = 0, 0
	default:
		panic("unsupported trend score in fixture")
	}
	return m
}

func newTestScreener(src MetricsSource) *Screener {
	return New(src, 2, 0, zerolog.Nop())
}

func TestScreen_FilterAndSort(t *testing.T) {
	// Five fetched symbols with (value, trend) scores; only entries meeting
	// value >= 5 AND trend >= 2 survive, ordered by combined descending.
	src := &stubSource{metrics: map[string]model.StockMetrics{
		"T":     metricsWithScores("T", 6, 3),     // kept, combined 9
		"VZ":    metricsWithScores("VZ", 4, 5),    // value too low
		"TMUS":  metricsWithScores("TMUS", 7, 1),  // trend too low
		"CMCSA": metricsWithScores("CMCSA", 5, 2), // kept, combined 7
		"CHTR":  metricsWithScores("CHTR", 2, 2),  // value too low
	}}

	results, err := newTestScreener(src).Screen(context.Background(), Options{
		Category:      "telecom",
		MinValueScore: 5,
		MinTrendScore: 2,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "T", results[0].Symbol)
	assert.Equal(t, 9, results[0].CombinedScore)
	assert.Equal(t, "CMCSA", results[1].Symbol)
	assert.Equal(t, 7, results[1].CombinedScore)
}

func TestScreen_UnknownCategory(t *testing.T) {
	src := &stubSource{}
	_, err := newTestScreener(src).Screen(context.Background(), Options{Category: "crypto"})
	require.Error(t, err)
	assert.ErrorIs(t, err, watchlist.ErrUnknownCategory)
	assert.Contains(t, err.Error(), "utilities") // lists valid keys
}

func TestScreen_FailedSymbolsAreSkipped(t *testing.T) {
	// Only two of the five telecom symbols have data; the rest fail without
	// aborting the batch.
	src := &stubSource{metrics: map[string]model.StockMetrics{
		"T":  metricsWithScores("T", 6, 3),
		"VZ": metricsWithScores("VZ", 6, 2),
	}}

	results, err := newTestScreener(src).Screen(context.Background(), DefaultOptions("telecom"))
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestScreen_AllSymbolsFail(t *testing.T) {
	results, err := newTestScreener(&stubSource{}).Screen(context.Background(), DefaultOptions("telecom"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScreen_TieBreaksBySymbol(t *testing.T) {
	// CP and CSX score identically; order falls back to symbol ascending.
	src := &stubSource{metrics: map[string]model.StockMetrics{
		"CSX": metricsWithScores("CSX", 6, 3),
		"CP":  metricsWithScores("CP", 6, 3),
	}}

	results, err := newTestScreener(src).Screen(context.Background(), DefaultOptions("railroads"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "CP", results[0].Symbol)
	assert.Equal(t, "CSX", results[1].Symbol)
}

func TestScreen_Idempotent(t *testing.T) {
	src := &stubSource{metrics: map[string]model.StockMetrics{
		"T":     metricsWithScores("T", 6, 3),
		"VZ":    metricsWithScores("VZ", 6, 2),
		"CMCSA": metricsWithScores("CMCSA", 5, 2),
	}}
	scr := newTestScreener(src)

	first, err := scr.Screen(context.Background(), DefaultOptions("telecom"))
	require.NoError(t, err)
	second, err := scr.Screen(context.Background(), DefaultOptions("telecom"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScreen_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestScreener(&stubSource{}).Screen(ctx, DefaultOptions("telecom"))
	assert.ErrorIs(t, err, context.Canceled)
}
