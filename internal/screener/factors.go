package screener

// Each factor is a pure bucket scorer over one metric. Unknown metrics
// contribute 0. First matching bucket wins.

// scorePE awards points for a low trailing P/E (lower is better).
func scorePE(pe *float64) int {
	if pe == nil || *pe <= 0 {
		return 0
	}
	switch {
	case *pe < 15:
		return 3
	case *pe < 20:
		return 2
	case *pe < 25:
		return 1
	}
	return 0
}

// scorePB awards points for a low price-to-book (lower is better).
func scorePB(pb *float64) int {
	if pb == nil || *pb <= 0 {
		return 0
	}
	switch {
	case *pb < 1.5:
		return 3
	case *pb < 3:
		return 2
	case *pb < 5:
		return 1
	}
	return 0
}

// scoreDividendYield awards points for a high yield (stability).
// Yield is a fraction, not a percentage.
func scoreDividendYield(yield float64) int {
	switch {
	case yield > 0.04:
		return 3
	case yield > 0.02:
		return 2
	case yield > 0.01:
		return 1
	}
	return 0
}

// scoreBeta awards points for low volatility relative to the market.
// A beta of exactly 0 is treated as unknown, matching provider convention.
func scoreBeta(beta *float64) int {
	if beta == nil || *beta == 0 {
		return 0
	}
	switch {
	case *beta < 0.8:
		return 3
	case *beta < 1.0:
		return 2
	case *beta < 1.2:
		return 1
	}
	return 0
}

// score1YReturn scores the one-year return. Steep declines below -20% take a
// 2-point penalty; the two-year factor deliberately has no such bucket.
func score1YReturn(ret float64) int {
	switch {
	case ret > 20:
		return 3
	case ret > 10:
		return 2
	case ret > 0:
		return 1
	case ret < -20:
		return -2
	}
	return 0
}

// score2YReturn scores the two-year return.
func score2YReturn(ret float64) int {
	switch {
	case ret > 30:
		return 3
	case ret > 15:
		return 2
	case ret > 0:
		return 1
	}
	return 0
}
