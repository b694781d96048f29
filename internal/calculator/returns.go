package calculator

import (
	"errors"

	"StockScout/internal/model"
)

// CalculateTrendReturns derives the 1-year and 2-year returns (signed
// percentages) from a two-year daily history.
//
// The "one year ago" price is the close at the midpoint index when the
// history holds more than 250 observations, otherwise the oldest close. This
// is an index approximation, not a calendar lookup, and drifts with holiday
// gaps; it is kept as-is because changing it would silently shift scores.
func CalculateTrendReturns(bars []model.OHLCV) (ret1y, ret2y float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}

	current := bars[len(bars)-1].Close
	oldest := bars[0].Close

	price1yAgo := oldest
	if len(bars) > 250 {
		price1yAgo = bars[len(bars)/2].Close
	}

	ret1y = (current - price1yAgo) / price1yAgo * 100
	ret2y = (current - oldest) / oldest * 100
	return ret1y, ret2y, nil
}
