package service

import (
	"context"
	"errors"
	"fmt"

	"streakfade/internal/domain"
	"streakfade/internal/logger"

	"github.com/montanaflynn/stats"
)

// StreakService detects instruments whose last StreakLength daily
// returns all share a sign. Symbols that streaked up become short
// candidates, symbols that streaked down become long candidates; the
// two lists are disjoint by construction.
type StreakService interface {
	GetStreakingSymbols(ctx context.Context, universe []string) (shorts []string, longs []string, err error)
}

type streakServiceHandler struct {
	History HistoryService
	Params  domain.StrategyParams
}

func NewStreakService(history HistoryService, params domain.StrategyParams) StreakService {
	return streakServiceHandler{
		History: history,
		Params:  params,
	}
}

func (h streakServiceHandler) GetStreakingSymbols(ctx context.Context, universe []string) ([]string, []string, error) {
	log := logger.FromContext(ctx)

	if len(universe) == 0 {
		return []string{}, []string{}, nil
	}

	window := h.Params.StreakLength
	closes, err := h.History.GetAlignedCloses(ctx, universe, window+1)
	if errors.Is(err, ErrNoCloseData) {
		// recoverable: sit the cycle out rather than crash
		log.Warnf("close prices missing from history, returning empty candidate lists")
		return []string{}, []string{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get history for streak detection: %w", err)
	}

	shorts := []string{}
	longs := []string{}
	// iterate the universe slice, not the closes map, so candidate
	// order is stable across runs
	for _, symbol := range universe {
		series, ok := closes[symbol]
		if !ok || len(series) < window+1 {
			continue
		}

		signs := returnSigns(series)
		signSum, err := stats.Sum(signs)
		if err != nil {
			continue
		}

		switch int(signSum) {
		case window:
			shorts = append(shorts, symbol)
		case -window:
			longs = append(longs, symbol)
		}
	}

	return shorts, longs, nil
}

// returnSigns computes the sign of each day-over-day percent change,
// dropping the undefined first row. A zero previous close would make
// the percent change undefined; the sign of the raw difference is
// used instead, which is what the change's sign converges to.
func returnSigns(series []float64) []float64 {
	signs := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		diff := series[i] - series[i-1]
		switch {
		case diff > 0:
			signs = append(signs, 1)
		case diff < 0:
			signs = append(signs, -1)
		default:
			signs = append(signs, 0)
		}
	}
	return signs
}
