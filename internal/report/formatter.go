package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"StockScout/internal/model"
)

const tableWidth = 118

// FormatTable renders screening results as a fixed-width console table.
// Unknown optional fields render as "N/A", distinct from zero.
func FormatTable(results []model.ScoredStock) string {
	if len(results) == 0 {
		return "No stocks matched the criteria.\n"
	}

	var b strings.Builder
	rule := strings.Repeat("=", tableWidth)

	b.WriteString(rule + "\n")
	b.WriteString("RECESSION-PROOF VALUE STOCKS - SCREENING RESULTS\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%-8s %-24s %10s %7s %7s %8s %6s %8s %12s %6s %6s %6s\n",
		"SYMBOL", "NAME", "PRICE", "P/E", "P/B", "DIV YLD", "BETA", "1Y RET", "AVG VOL", "VALUE", "TREND", "TOTAL"))

	for _, r := range results {
		b.WriteString(fmt.Sprintf("%-8s %-24s %10s %7s %7s %8s %6s %8s %12s %6d %6d %6d\n",
			r.Symbol,
			truncate(r.Name, 24),
			fmt.Sprintf("$%.2f", r.Price),
			fmtOptional(r.TrailingPE, 1),
			fmtOptional(r.PriceToBook, 2),
			fmtYield(r.DividendYield),
			fmtOptional(r.Beta, 2),
			fmt.Sprintf("%+.1f%%", r.Return1Y),
			humanize.Comma(r.AvgVolume),
			r.ValueScore,
			r.TrendScore,
			r.CombinedScore,
		))
	}

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Total matches: %d\n", len(results)))
	return b.String()
}

// FormatTelegram renders the top results as a Telegram HTML message.
func FormatTelegram(category string, results []model.ScoredStock, topN int) string {
	var b strings.Builder
	label := category
	if label == "" {
		label = "all categories"
	}
	b.WriteString(fmt.Sprintf("📊 <b>StockScout</b> | %s | %s\n\n",
		label, time.Now().Format("2006-01-02")))

	if len(results) == 0 {
		b.WriteString("No stocks matched the criteria.")
		return b.String()
	}

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}
	for i, r := range results {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> $%.2f | 1y %+.1f%% | V%d T%d = <b>%d</b>\n",
			i+1, r.Symbol, r.Price, r.Return1Y, r.ValueScore, r.TrendScore, r.CombinedScore))
	}
	return b.String()
}

func fmtOptional(v *float64, decimals int) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

func fmtYield(yield float64) string {
	if yield == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", yield*100)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
