package service

import (
	"context"
	"sort"

	"streakfade/internal/domain"
	"streakfade/internal/logger"
)

// UniverseService owns the day's eligible symbol set. Rebuild runs
// the coarse selection over a raw snapshot; HandleRemovals reacts to
// the provider dropping a symbol. Removal never force-liquidates -
// open positions are left to expire through the holding-period
// logic.
type UniverseService interface {
	Rebuild(ctx context.Context, snapshot []domain.CoarseFundamental) []string
	HandleRemovals(removed []string)
	Current() []string
}

type universeServiceHandler struct {
	params  domain.StrategyParams
	symbols []string
}

func NewUniverseService(params domain.StrategyParams) UniverseService {
	return &universeServiceHandler{
		params:  params,
		symbols: []string{},
	}
}

func (h *universeServiceHandler) Rebuild(ctx context.Context, snapshot []domain.CoarseFundamental) []string {
	log := logger.FromContext(ctx)

	eligible := []domain.CoarseFundamental{}
	for _, row := range snapshot {
		if !row.HasFundamentalData {
			continue
		}
		if row.AdjustedPrice < h.params.MinPrice || row.AdjustedPrice > h.params.MaxPrice {
			continue
		}
		eligible = append(eligible, row)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].DollarVolume() > eligible[j].DollarVolume()
	})

	if len(eligible) > h.params.UniverseSize {
		eligible = eligible[:h.params.UniverseSize]
	}

	symbols := make([]string, 0, len(eligible))
	for _, row := range eligible {
		symbols = append(symbols, row.Symbol)
	}
	h.symbols = symbols

	log.Infof("rebuilt universe: %d eligible of %d snapshot rows", len(symbols), len(snapshot))

	return h.Current()
}

func (h *universeServiceHandler) HandleRemovals(removed []string) {
	if len(removed) == 0 {
		return
	}

	drop := map[string]bool{}
	for _, symbol := range removed {
		drop[symbol] = true
	}

	kept := h.symbols[:0]
	for _, symbol := range h.symbols {
		if !drop[symbol] {
			kept = append(kept, symbol)
		}
	}
	h.symbols = kept
}

func (h *universeServiceHandler) Current() []string {
	out := make([]string, len(h.symbols))
	copy(out, h.symbols)
	return out
}
