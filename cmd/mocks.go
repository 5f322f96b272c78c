package cmd

import (
	"context"
	"time"

	"streakfade/internal/domain"
	"streakfade/internal/repository"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockAlpacaRepositoryHandler fakes order submission while
// delegating market data reads to the real broker client. Used when
// STREAKFADE_ENV=test so cycles can run end to end without touching
// a live account.
type mockAlpacaRepositoryHandler struct {
	realAlpacaRepository repository.AlpacaRepository
}

func NewMockAlpacaRepository(alpacaRepository repository.AlpacaRepository) repository.AlpacaRepository {
	return mockAlpacaRepositoryHandler{
		realAlpacaRepository: alpacaRepository,
	}
}

func (m mockAlpacaRepositoryHandler) PlaceOrder(req repository.AlpacaPlaceOrderRequest) (*alpaca.Order, error) {
	return fakeFilledOrder(req.Symbol, req.Side), nil
}

func (m mockAlpacaRepositoryHandler) ClosePosition(symbol string) (*alpaca.Order, error) {
	return fakeFilledOrder(symbol, alpaca.Sell), nil
}

func (m mockAlpacaRepositoryHandler) GetPositions() ([]alpaca.Position, error) {
	return []alpaca.Position{}, nil
}

func (m mockAlpacaRepositoryHandler) IsMarketOpen() (bool, error) {
	return true, nil
}

func (m mockAlpacaRepositoryHandler) GetAccount() (*alpaca.Account, error) {
	return &alpaca.Account{
		Equity: decimal.NewFromInt(250000),
	}, nil
}

func (m mockAlpacaRepositoryHandler) GetOrder(alpacaOrderID uuid.UUID) (*alpaca.Order, error) {
	return fakeFilledOrder("", alpaca.Buy), nil
}

func (m mockAlpacaRepositoryHandler) GetDailyCloses(ctx context.Context, symbols []string, days int) (map[string][]domain.AssetPrice, error) {
	return m.realAlpacaRepository.GetDailyCloses(ctx, symbols, days)
}

func (m mockAlpacaRepositoryHandler) GetCoarseSnapshot(ctx context.Context, symbols []string) ([]domain.CoarseFundamental, error) {
	return m.realAlpacaRepository.GetCoarseSnapshot(ctx, symbols)
}

func fakeFilledOrder(symbol string, side alpaca.Side) *alpaca.Order {
	now := time.Now().UTC()
	return &alpaca.Order{
		ID:        uuid.NewString(),
		Symbol:    symbol,
		Side:      side,
		Status:    "filled",
		CreatedAt: now,
		FilledAt:  &now,
	}
}
