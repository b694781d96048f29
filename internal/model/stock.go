package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Fundamentals is the sparse info record returned by the provider.
// Pointer fields are nil when the provider has no value for them; that is
// distinct from zero and scoring must treat it as unknown.
type Fundamentals struct {
	Name          string
	Sector        string
	TrailingPE    *float64
	ForwardPE     *float64
	PriceToBook   *float64
	DividendYield float64 // fraction, 0 when absent
	Beta          *float64
	High52w       *float64
	Low52w        *float64
	MarketCap     float64
	AvgVolume     int64 // 0 when unknown
}

// StockMetrics is the per-symbol snapshot assembled from one screening pass.
// It is built once from fresh provider data and never mutated afterwards.
type StockMetrics struct {
	Symbol string
	Name   string
	Sector string

	Price float64

	TrailingPE    *float64
	ForwardPE     *float64
	PriceToBook   *float64
	DividendYield float64
	Beta          *float64
	High52w       *float64
	Low52w        *float64
	MarketCap     float64
	AvgVolume     int64

	// Signed percentages derived from the 2-year price history.
	Return1Y float64
	Return2Y float64

	FetchedAt time.Time
}

// ScoredStock is a StockMetrics with its screening scores attached.
type ScoredStock struct {
	StockMetrics
	ValueScore    int
	TrendScore    int
	CombinedScore int // ValueScore + TrendScore, may be negative
}
