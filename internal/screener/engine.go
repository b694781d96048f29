package screener

import "StockScout/internal/model"

// Score computes the value, trend and combined scores for one stock.
// Scores are pure functions of the fetched metrics.
func Score(m model.StockMetrics) model.ScoredStock {
	value := scorePE(m.TrailingPE) +
		scorePB(m.PriceToBook) +
		scoreDividendYield(m.DividendYield) +
		scoreBeta(m.Beta)

	trend := score1YReturn(m.Return1Y) + score2YReturn(m.Return2Y)

	return model.ScoredStock{
		StockMetrics:  m,
		ValueScore:    value,
		TrendScore:    trend,
		CombinedScore: value + trend,
	}
}
