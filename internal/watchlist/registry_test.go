package watchlist

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_KnownCategory(t *testing.T) {
	symbols, err := Resolve("telecom")
	require.NoError(t, err)
	assert.Equal(t, []string{"T", "VZ", "TMUS", "CMCSA", "CHTR"}, symbols)
}

func TestResolve_UnknownCategory(t *testing.T) {
	_, err := Resolve("meme_stocks")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	// the error reports the valid keys to the caller
	assert.Contains(t, err.Error(), "utilities")
	assert.Contains(t, err.Error(), "healthcare")
}

func TestResolve_EmptyCategoryIsUnionOfAll(t *testing.T) {
	symbols, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, AllSymbols(), symbols)
}

func TestAllSymbols_DeduplicatedAndSorted(t *testing.T) {
	all := AllSymbols()
	require.NotEmpty(t, all)

	seen := make(map[string]int)
	for _, s := range all {
		seen[s]++
	}
	// KO appears in consumer_staples, food_beverage and dividend_aristocrats
	// but only once in the union.
	assert.Equal(t, 1, seen["KO"])
	assert.Equal(t, 1, seen["PG"])
	assert.True(t, sort.StringsAreSorted(all))
}

func TestNames_SortedAndComplete(t *testing.T) {
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "dividend_aristocrats")
	assert.Contains(t, names, "defense_space")
	assert.Len(t, names, len(categories))
}

func TestResolve_ReturnsCopy(t *testing.T) {
	first, err := Resolve("railroads")
	require.NoError(t, err)
	first[0] = "MUTATED"

	second, err := Resolve("railroads")
	require.NoError(t, err)
	assert.Equal(t, "UNP", second[0])
}
