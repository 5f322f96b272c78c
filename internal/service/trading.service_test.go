package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"streakfade/internal/db/models/postgres/public/model"
	mock_repository "streakfade/internal/repository/mocks"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_SetTargetAllocation_sizing(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects zero allocation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, nil)

		err := handler.SetTargetAllocation(ctx, "AAPL", decimal.Zero)
		require.ErrorContains(t, err, "zero allocation")
	})

	t.Run("propagates account lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, nil)

		alpacaRepository.EXPECT().GetAccount().Return(nil, errors.New("alpaca is down"))

		err := handler.SetTargetAllocation(ctx, "AAPL", decimal.NewFromFloat(0.01))
		require.ErrorContains(t, err, "failed to size allocation for AAPL")
	})

	t.Run("rejects sub-dollar orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, nil)

		alpacaRepository.EXPECT().GetAccount().Return(&alpaca.Account{
			Equity: decimal.NewFromInt(50),
		}, nil)

		err := handler.SetTargetAllocation(ctx, "AAPL", decimal.NewFromFloat(0.01))
		require.ErrorContains(t, err, "amount must be >= 1")
	})
}

func Test_Liquidate(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the broker position and records the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, tradeOrderRepository)

		providerID := uuid.New()
		alpacaRepository.EXPECT().ClosePosition("AAPL").Return(&alpaca.Order{
			ID: providerID.String(),
		}, nil)

		var recorded model.TradeOrder
		tradeOrderRepository.EXPECT().Add(nil, gomock.Any()).DoAndReturn(
			func(_ *sql.Tx, to model.TradeOrder) (*model.TradeOrder, error) {
				recorded = to
				return &to, nil
			})

		err := handler.Liquidate(ctx, "AAPL")
		require.NoError(t, err)

		require.Equal(t, "AAPL", recorded.Symbol)
		require.Equal(t, model.TradeOrderStatus_Submitted, recorded.Status)
		require.NotNil(t, recorded.ProviderID)
		require.Equal(t, providerID, *recorded.ProviderID)
		require.NotNil(t, recorded.Notes)
	})

	t.Run("propagates broker failure without recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, tradeOrderRepository)

		alpacaRepository.EXPECT().ClosePosition("AAPL").Return(nil, errors.New("no position"))

		err := handler.Liquidate(ctx, "AAPL")
		require.ErrorContains(t, err, "failed to liquidate AAPL")
	})
}

func Test_UpdateAllPendingOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("marks filled submitted orders completed and skips the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, tradeOrderRepository)

		filledID := uuid.New()
		filledOrderID := uuid.New()
		tradeOrderRepository.EXPECT().List().Return([]model.TradeOrder{
			{
				TradeOrderID: filledOrderID,
				Symbol:       "AAPL",
				Status:       model.TradeOrderStatus_Submitted,
				ProviderID:   &filledID,
			},
			{
				TradeOrderID: uuid.New(),
				Symbol:       "MSFT",
				Status:       model.TradeOrderStatus_Completed,
			},
			{
				TradeOrderID: uuid.New(),
				Symbol:       "NVDA",
				Status:       model.TradeOrderStatus_Pending,
				ProviderID:   nil,
			},
		}, nil)

		alpacaRepository.EXPECT().GetOrder(filledID).Return(&alpaca.Order{
			ID:     filledID.String(),
			Status: "filled",
		}, nil)

		tradeOrderRepository.EXPECT().
			Update(nil, filledOrderID, model.TradeOrder{Status: model.TradeOrderStatus_Completed}, gomock.Any()).
			Return(&model.TradeOrder{}, nil)

		require.NoError(t, handler.UpdateAllPendingOrders(ctx))
	})

	t.Run("leaves still-working orders untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
		tradeOrderRepository := mock_repository.NewMockTradeOrderRepository(ctrl)
		handler := NewTradeService(nil, alpacaRepository, tradeOrderRepository)

		workingID := uuid.New()
		tradeOrderRepository.EXPECT().List().Return([]model.TradeOrder{
			{
				TradeOrderID: uuid.New(),
				Symbol:       "AAPL",
				Status:       model.TradeOrderStatus_Submitted,
				ProviderID:   &workingID,
			},
		}, nil)

		alpacaRepository.EXPECT().GetOrder(workingID).Return(&alpaca.Order{
			ID:     workingID.String(),
			Status: "accepted",
		}, nil)

		require.NoError(t, handler.UpdateAllPendingOrders(ctx))
	})
}

func Test_statusFromProvider(t *testing.T) {
	require.Equal(t, model.TradeOrderStatus_Completed, statusFromProvider("filled"))
	require.Equal(t, model.TradeOrderStatus_Error, statusFromProvider("rejected"))
	require.Equal(t, model.TradeOrderStatus_Submitted, statusFromProvider("partially_filled"))
}
