package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"streakfade/internal/domain"
	"streakfade/internal/repository"
	"streakfade/internal/util"
)

// ErrNoCloseData signals that the price source responded without any
// usable closing prices. Callers are expected to treat it as a
// recoverable empty result, not a failure.
var ErrNoCloseData = errors.New("history response contains no close prices")

// HistoryService supplies recent daily closes aligned on a shared
// trading-day index, with gaps forward-filled and any remaining
// leading gaps set to 0.0. A symbol with absent history is kept, not
// excluded, so a series can carry fabricated zero closes before its
// first real observation.
type HistoryService interface {
	GetAlignedCloses(ctx context.Context, symbols []string, days int) (map[string][]float64, error)
}

func NewAlpacaHistoryService(alpacaRepository repository.AlpacaRepository) HistoryService {
	return alpacaHistoryServiceHandler{
		AlpacaRepository: alpacaRepository,
	}
}

type alpacaHistoryServiceHandler struct {
	AlpacaRepository repository.AlpacaRepository
}

func (h alpacaHistoryServiceHandler) GetAlignedCloses(ctx context.Context, symbols []string, days int) (map[string][]float64, error) {
	prices, err := h.AlpacaRepository.GetDailyCloses(ctx, symbols, days)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve daily closes: %w", err)
	}

	return alignAndFill(prices, days)
}

// NewDbHistoryService reads closes previously ingested into the
// adjusted_price table instead of hitting the broker, for offline
// runs.
func NewDbHistoryService(adjPriceRepository repository.AdjustedPriceRepository) HistoryService {
	return dbHistoryServiceHandler{
		AdjustedPriceRepository: adjPriceRepository,
	}
}

type dbHistoryServiceHandler struct {
	AdjustedPriceRepository repository.AdjustedPriceRepository
}

func (h dbHistoryServiceHandler) GetAlignedCloses(ctx context.Context, symbols []string, days int) (map[string][]float64, error) {
	prices, err := h.AdjustedPriceRepository.ListCloses(symbols, days)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stored closes: %w", err)
	}

	return alignAndFill(prices, days)
}

// alignAndFill projects per-symbol price series onto the union of
// observed trading days, truncated to the most recent `days` entries.
// Missing values forward-fill from the symbol's previous close;
// values missing before the symbol's first observation become 0.0.
func alignAndFill(prices map[string][]domain.AssetPrice, days int) (map[string][]float64, error) {
	dateSet := map[string]time.Time{}
	total := 0
	for _, series := range prices {
		for _, p := range series {
			dateSet[util.FormatDate(p.Date)] = p.Date
			total++
		}
	}
	if total == 0 {
		return nil, ErrNoCloseData
	}

	dates := make([]string, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	out := map[string][]float64{}
	for symbol, series := range prices {
		bySymbolDate := map[string]float64{}
		for _, p := range series {
			bySymbolDate[util.FormatDate(p.Date)] = p.Price
		}

		filled := make([]float64, 0, len(dates))
		last := 0.0
		for _, d := range dates {
			if price, ok := bySymbolDate[d]; ok {
				last = price
			}
			filled = append(filled, last)
		}
		out[symbol] = filled
	}

	return out, nil
}
