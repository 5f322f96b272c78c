package service

import (
	"context"
	"fmt"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/domain"
	"streakfade/internal/logger"
	"streakfade/internal/repository"
)

// BookService runs the position lifecycle: NotHeld -> Held(0) on
// entry, Held(age) -> Held(age+1) once per cycle, Held(age) ->
// NotHeld with a liquidation instruction once age reaches the max
// holding period.
type BookService interface {
	// Load rebuilds the in-memory book from persisted positions.
	// Call once at startup, before any cycle runs.
	Load(ctx context.Context) error
	IncrementAges(ctx context.Context) error
	// RemoveDuplicates drops already-held symbols from both
	// candidate lists. Idempotent.
	RemoveDuplicates(shorts, longs []string) ([]string, []string)
	// LiquidateStale issues exactly one liquidation per position at
	// or past the max holding period and removes it from the book.
	// Returns the liquidated symbols.
	LiquidateStale(ctx context.Context) ([]string, error)
	Open(ctx context.Context, symbol string, side domain.PositionSide) error
	Holdings() []domain.Holding
	Len() int
}

type bookServiceHandler struct {
	book               *domain.Book
	params             domain.StrategyParams
	positionRepository repository.PositionRepository
	tradeService       TradeService
}

func NewBookService(
	params domain.StrategyParams,
	positionRepository repository.PositionRepository,
	tradeService TradeService,
) BookService {
	return &bookServiceHandler{
		book:               domain.NewBook(),
		params:             params,
		positionRepository: positionRepository,
		tradeService:       tradeService,
	}
}

func (h *bookServiceHandler) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	positions, err := h.positionRepository.List()
	if err != nil {
		return fmt.Errorf("failed to load book: %w", err)
	}

	h.book = domain.NewBook()
	for _, p := range positions {
		h.book.Restore(p.Symbol, domain.PositionSide(p.Side), int(p.Age))
	}

	log.Infof("restored book with %d positions", h.book.Len())

	return nil
}

// IncrementAges persists first so a failed write leaves the
// in-memory book and the store at the same age.
func (h *bookServiceHandler) IncrementAges(ctx context.Context) error {
	if err := h.positionRepository.IncrementAges(nil); err != nil {
		return fmt.Errorf("failed to persist aged positions: %w", err)
	}
	h.book.IncrementAges()
	return nil
}

func (h *bookServiceHandler) RemoveDuplicates(shorts, longs []string) ([]string, []string) {
	filter := func(candidates []string) []string {
		kept := []string{}
		for _, symbol := range candidates {
			if !h.book.Held(symbol) {
				kept = append(kept, symbol)
			}
		}
		return kept
	}
	return filter(shorts), filter(longs)
}

func (h *bookServiceHandler) LiquidateStale(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	stale := h.book.Stale(h.params.MaxHoldingPeriod)
	for _, symbol := range stale {
		if err := h.tradeService.Liquidate(ctx, symbol); err != nil {
			return nil, fmt.Errorf("failed to liquidate stale holding %s: %w", symbol, err)
		}
		h.book.Remove(symbol)
		if err := h.positionRepository.Remove(nil, symbol); err != nil {
			return nil, fmt.Errorf("failed to remove liquidated position %s: %w", symbol, err)
		}
		log.Infof("%s max holding period reached, liquidated", symbol)
	}

	return stale, nil
}

func (h *bookServiceHandler) Open(ctx context.Context, symbol string, side domain.PositionSide) error {
	h.book.Open(symbol, side)
	_, err := h.positionRepository.Add(nil, model.Position{
		Symbol: symbol,
		Side:   model.PositionSide(side),
		Age:    0,
	})
	if err != nil {
		return fmt.Errorf("failed to persist opened position %s: %w", symbol, err)
	}
	return nil
}

func (h *bookServiceHandler) Holdings() []domain.Holding {
	out := []domain.Holding{}
	for _, symbol := range h.book.Symbols() {
		holding, ok := h.book.Get(symbol)
		if ok {
			out = append(out, holding)
		}
	}
	return out
}

func (h *bookServiceHandler) Len() int {
	return h.book.Len()
}
