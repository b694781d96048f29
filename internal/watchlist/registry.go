package watchlist

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownCategory is returned when a requested category is not in the
// registry. The wrapped message carries the list of valid keys.
var ErrUnknownCategory = errors.New("unknown category")

// categories maps each watchlist category to its ticker symbols. Symbols may
// appear in more than one category. The data is static configuration.
var categories = map[string][]string{
	// Defensive utilities
	"utilities":       {"NEE", "DUK", "SO", "D", "AEP", "XEL", "ES", "WEC", "ED", "EIX"},
	"water_utilities": {"AWK", "WTR", "WTRG", "SJW", "AWR", "CWT", "MSEX", "YORW"},

	// Consumer defensive
	"consumer_staples":   {"PG", "KO", "PEP", "WMT", "COST", "CL", "KMB", "GIS", "K", "HSY"},
	"food_beverage":      {"KO", "PEP", "MDLZ", "KHC", "GIS", "CPB", "SJM", "CAG", "HRL", "TSN"},
	"household_products": {"PG", "CL", "CHD", "CLX", "KMB", "SPB", "EPC", "CENT"},

	// Retail
	"discount_retail": {"WMT", "COST", "DG", "DLTR", "TJX", "ROST", "BJ", "OLLI", "FIVE", "PSMT"},
	"grocery":         {"KR", "ACI", "SFM", "GO", "NGVC", "WMK", "VLGEA"},

	// Healthcare
	"healthcare":       {"JNJ", "UNH", "PFE", "MRK", "ABBV", "LLY", "BMY", "AMGN", "GILD", "CVS"},
	"pharmaceuticals":  {"PFE", "MRK", "ABBV", "LLY", "BMY", "AMGN", "GILD", "VTRS", "TAK", "NVO"},
	"health_insurance": {"UNH", "ELV", "CI", "HUM", "CNC", "MOH"},

	// Telecom
	"telecom": {"T", "VZ", "TMUS", "CMCSA", "CHTR"},

	// Defensive REITs
	"reits_healthcare":  {"WELL", "VTR", "OHI", "PEAK", "HR", "DOC", "SBRA", "LTC"},
	"reits_residential": {"AVB", "EQR", "ESS", "MAA", "UDR", "CPT", "INVH", "AMH"},
	"reits_essential":   {"O", "WPC", "NNN", "ADC", "STOR", "FCPT", "EPRT"},

	// Defensive financials
	"insurance":      {"BRK-B", "PGR", "ALL", "TRV", "CB", "MET", "PRU", "AFL", "AIG", "HIG"},
	"regional_banks": {"USB", "PNC", "TFC", "FITB", "RF", "KEY", "CFG", "MTB", "HBAN"},

	// Infrastructure & industrial
	"waste_management":  {"WM", "RSG", "WCN", "CWST", "GFL", "CLH", "SRCL"},
	"defense_aerospace": {"LMT", "RTX", "NOC", "GD", "BA", "LHX", "HII", "TXT", "LDOS"},
	"railroads":         {"UNP", "CSX", "NSC", "CP", "CNI"},
	"infrastructure":    {"AMT", "CCI", "SBAC", "NEE", "AEP", "PCG", "SRE", "WMB", "KMI"},

	// Pipelines / storage
	"midstream_energy": {"EPD", "ET", "MPLX", "WMB", "KMI", "OKE", "TRGP", "PAA"},

	// Recession hedge
	"gold_miners": {"NEM", "GOLD", "AEM", "FNV", "WPM", "RGLD", "KGC", "AGI"},

	// 25+ years of dividend growth
	"dividend_aristocrats": {
		"JNJ", "PG", "KO", "PEP", "MMM", "ABT", "ABBV", "MCD",
		"WMT", "XOM", "CVX", "CL", "EMR", "GPC", "ITW", "SWK",
	},

	// Recession-resistant vices
	"sin_stocks": {"MO", "PM", "BTI", "STZ", "BF-B", "DEO", "TAP", "SAM", "WYNN", "LVS"},

	// Small/mid-cap defense contractors
	"defense_smallcap": {
		"KTOS", "MRCY", "AVAV", "BWXT", "PSN", "CACI", "SAIC", "BAH",
		"AJRD", "TDG", "HEI", "CW", "MOG-A", "PLTR", "RKLB", "RDW",
		"IRDM", "GILT", "VSAT", "AXON", "SWBI", "RGR", "POWW", "AAXN",
	},

	// Emerging space & hypersonics
	"defense_space": {"RKLB", "LUNR", "RDW", "MNTS", "BKSY", "PL", "ASTS", "IRDM", "SPIR"},
}

// Names returns all category names in sorted order.
func Names() []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the symbols for the given category. An empty category
// resolves to the deduplicated union of all categories.
func Resolve(category string) ([]string, error) {
	if category == "" {
		return AllSymbols(), nil
	}
	symbols, ok := categories[category]
	if !ok {
		return nil, fmt.Errorf("%w %q, valid categories: %s",
			ErrUnknownCategory, category, strings.Join(Names(), ", "))
	}
	out := make([]string, len(symbols))
	copy(out, symbols)
	return out, nil
}

// AllSymbols returns every symbol across all categories, deduplicated and
// sorted.
func AllSymbols() []string {
	seen := make(map[string]bool)
	for _, symbols := range categories {
		for _, s := range symbols {
			seen[s] = true
		}
	}
	all := make([]string, 0, len(seen))
	for s := range seen {
		all = append(all, s)
	}
	sort.Strings(all)
	return all
}
