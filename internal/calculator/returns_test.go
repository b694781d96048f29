package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	bars := make([]model.OHLCV, len(closes))
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:  start.AddDate(0, 0, i),
			Open:  c,
			High:  c * 1.01,
			Low:   c * 0.99,
			Close: c,
		}
	}
	return bars
}

func TestCalculateTrendReturns_LongHistoryUsesMidpoint(t *testing.T) {
	// 501 observations: the 1y reference is the close at index 250, not a
	// calendar lookup.
	closes := make([]float64, 501)
	for i := range closes {
		closes[i] = 100
	}
	closes[0] = 100   // 2y reference
	closes[250] = 120 // midpoint, 1y reference
	closes[500] = 180 // current

	ret1y, ret2y, err := CalculateTrendReturns(barsFromCloses(closes))
	require.NoError(t, err)
	assert.InDelta(t, 50.0, ret1y, 1e-9) // (180-120)/120
	assert.InDelta(t, 80.0, ret2y, 1e-9) // (180-100)/100
}

func TestCalculateTrendReturns_ShortHistoryUsesOldest(t *testing.T) {
	// At 250 observations or fewer both returns anchor on the oldest close.
	closes := make([]float64, 250)
	for i := range closes {
		closes[i] = 100
	}
	closes[125] = 400 // would be the midpoint, must be ignored
	closes[249] = 150

	ret1y, ret2y, err := CalculateTrendReturns(barsFromCloses(closes))
	require.NoError(t, err)
	assert.InDelta(t, 50.0, ret1y, 1e-9)
	assert.Equal(t, ret1y, ret2y)
}

func TestCalculateTrendReturns_Boundary251(t *testing.T) {
	// 251 observations is the first length where the midpoint rule kicks in.
	closes := make([]float64, 251)
	for i := range closes {
		closes[i] = 100
	}
	closes[125] = 200
	closes[250] = 300

	ret1y, _, err := CalculateTrendReturns(barsFromCloses(closes))
	require.NoError(t, err)
	assert.InDelta(t, 50.0, ret1y, 1e-9) // (300-200)/200
}

func TestCalculateTrendReturns_Declines(t *testing.T) {
	ret1y, ret2y, err := CalculateTrendReturns(barsFromCloses([]float64{200, 150, 100}))
	require.NoError(t, err)
	assert.InDelta(t, -50.0, ret1y, 1e-9)
	assert.InDelta(t, -50.0, ret2y, 1e-9)
}

func TestCalculateTrendReturns_Empty(t *testing.T) {
	_, _, err := CalculateTrendReturns(nil)
	assert.Error(t, err)
}

func TestCalculate52WeekRange(t *testing.T) {
	closes := make([]float64, 300)
	for i := range closes {
		closes[i] = 100
	}
	closes[10] = 500 // older than 252 bars, outside the window
	closes[299] = 90

	high, low, err := Calculate52WeekRange(barsFromCloses(closes))
	require.NoError(t, err)
	assert.InDelta(t, 101.0, high, 1e-9) // 100 * 1.01
	assert.InDelta(t, 89.1, low, 1e-9)   // 90 * 0.99

	_, _, err = Calculate52WeekRange(nil)
	assert.Error(t, err)
}
