package app

import (
	"context"
	"fmt"
	"time"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/domain"
	"streakfade/internal/logger"
	"streakfade/internal/repository"
	"streakfade/internal/service"
)

// RebalancerHandler runs the daily streak-fade cycle. The host
// scheduler is expected to invoke Rebalance exactly once per trading
// day, near the close, with no overlapping invocations.
type RebalancerHandler struct {
	UniverseService       service.UniverseService
	StreakService         service.StreakService
	BookService           service.BookService
	TradeService          service.TradeService
	StrategyRunRepository repository.StrategyRunRepository
	Params                domain.StrategyParams

	// sampleCount tracks cycles since the last observability sample,
	// mirroring the holdings-count plot cadence of the original
	// strategy.
	sampleCount int
}

// RefreshUniverse reruns coarse selection over the day's snapshot.
// Invoked by the driver before the rebalance cycle on universe
// rebuild events.
func (h *RebalancerHandler) RefreshUniverse(ctx context.Context, snapshot []domain.CoarseFundamental) []string {
	return h.UniverseService.Rebuild(ctx, snapshot)
}

// OnUniverseChanged reacts to the provider reporting symbol
// removals. Removed symbols leave the tracked set; any open position
// is left to expire through the holding-period logic.
func (h *RebalancerHandler) OnUniverseChanged(removed []string) {
	h.UniverseService.HandleRemovals(removed)
}

// Rebalance executes one cycle in fixed order: age the book, find
// streak candidates, dedup against the book, liquidate stale
// positions, then open new entries. Aging and liquidation always
// precede entries, so a position is never aged or force-closed in
// the cycle that opened it.
func (h *RebalancerHandler) Rebalance(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := h.BookService.IncrementAges(ctx); err != nil {
		return err
	}

	shorts, longs, err := h.StreakService.GetStreakingSymbols(ctx, h.UniverseService.Current())
	if err != nil {
		return fmt.Errorf("failed to compute streak candidates: %w", err)
	}

	shorts, longs = h.BookService.RemoveDuplicates(shorts, longs)

	liquidated, err := h.BookService.LiquidateStale(ctx)
	if err != nil {
		return err
	}

	for _, symbol := range shorts {
		err = h.TradeService.SetTargetAllocation(ctx, symbol, h.Params.AllocationPct.Neg())
		if err != nil {
			return fmt.Errorf("failed to enter short %s: %w", symbol, err)
		}
		if err := h.BookService.Open(ctx, symbol, domain.PositionSideShort); err != nil {
			return err
		}
	}

	for _, symbol := range longs {
		err = h.TradeService.SetTargetAllocation(ctx, symbol, h.Params.AllocationPct)
		if err != nil {
			return fmt.Errorf("failed to enter long %s: %w", symbol, err)
		}
		if err := h.BookService.Open(ctx, symbol, domain.PositionSideLong); err != nil {
			return err
		}
	}

	log.Infow("rebalance cycle complete",
		"holdings", h.BookService.Len(),
		"shortsEntered", len(shorts),
		"longsEntered", len(longs),
		"liquidations", len(liquidated),
	)

	h.maybeEmitSample(ctx, len(shorts), len(longs), len(liquidated))

	return nil
}

// maybeEmitSample writes a holdings-count observability row every
// MaxHoldingPeriod cycles. Best-effort: a failed write is logged and
// the cycle still counts as sampled.
func (h *RebalancerHandler) maybeEmitSample(ctx context.Context, shortsEntered, longsEntered, liquidations int) {
	log := logger.FromContext(ctx)

	if h.sampleCount < h.Params.MaxHoldingPeriod {
		h.sampleCount++
		return
	}
	h.sampleCount = 0

	_, err := h.StrategyRunRepository.Add(model.StrategyRun{
		RunDate:       time.Now().UTC(),
		NumHoldings:   int32(h.BookService.Len()),
		ShortsEntered: int32(shortsEntered),
		LongsEntered:  int32(longsEntered),
		Liquidations:  int32(liquidations),
		UniverseSize:  int32(len(h.UniverseService.Current())),
	})
	if err != nil {
		log.Warnf("failed to record strategy run sample: %v", err)
	}
}
