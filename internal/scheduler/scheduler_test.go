package scheduler

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockScout/internal/model"
	"StockScout/internal/screener"
)

type fixedSource struct {
	metrics map[string]model.StockMetrics
}

func (f *fixedSource) Metrics(_ context.Context, symbol string) (*model.StockMetrics, error) {
	m, ok := f.metrics[symbol]
	if !ok {
		return nil, assert.AnError
	}
	return &m, nil
}

func newTestScheduler(src screener.MetricsSource) *Scheduler {
	scr := screener.New(src, 2, 0, zerolog.Nop())
	return NewScheduler(context.Background(), scr, nil, nil, 5, 5, 2, zerolog.Nop())
}

func TestHandleCommand_Categories(t *testing.T) {
	s := newTestScheduler(&fixedSource{})
	reply := s.HandleCommand("/categories")
	assert.Contains(t, reply, "utilities")
	assert.Contains(t, reply, "telecom")
}

func TestHandleCommand_ScreenUnknownCategory(t *testing.T) {
	s := newTestScheduler(&fixedSource{})
	reply := s.HandleCommand("/screen not_a_category")
	assert.Contains(t, reply, "unknown category")
}

func TestHandleCommand_ScreenEmptyResult(t *testing.T) {
	// every fetch fails, so the pass completes with an empty result set
	s := newTestScheduler(&fixedSource{})
	reply := s.HandleCommand("/screen telecom")
	assert.Contains(t, reply, "No stocks matched")
}

func TestHandleCommand_Help(t *testing.T) {
	s := newTestScheduler(&fixedSource{})
	reply := s.HandleCommand("/bogus")
	assert.Contains(t, reply, "/screen")
	assert.Contains(t, reply, "/categories")
}

func TestRegister_BadCronSpec(t *testing.T) {
	s := newTestScheduler(&fixedSource{})
	err := s.Register("not a cron spec")
	require.Error(t, err)
	require.NoError(t, s.Register("0 0 8 * * 1"))
}
