package service

import (
	"context"
	"errors"
	"testing"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/domain"
	mock_repository "streakfade/internal/repository/mocks"
	mock_service "streakfade/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_BookService(t *testing.T) {
	ctx := context.Background()
	params := domain.StrategyParams{}.WithDefaults()

	t.Run("load restores persisted positions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := NewBookService(params, positionRepository, nil)

		positionRepository.EXPECT().List().Return([]model.Position{
			{Symbol: "AAPL", Side: model.PositionSide_Short, Age: 3},
			{Symbol: "MSFT", Side: model.PositionSide_Long, Age: 1},
		}, nil)

		err := handler.Load(ctx)
		require.NoError(t, err)

		require.Equal(t, 2, handler.Len())
		require.Equal(t, []domain.Holding{
			{Symbol: "AAPL", Side: domain.PositionSideShort, Age: 3},
			{Symbol: "MSFT", Side: domain.PositionSideLong, Age: 1},
		}, handler.Holdings())
	})

	t.Run("remove duplicates is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := NewBookService(params, positionRepository, nil)

		positionRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, nil)
		require.NoError(t, handler.Open(ctx, "HELD", domain.PositionSideShort))

		shorts, longs := handler.RemoveDuplicates(
			[]string{"HELD", "NEW_SHORT"},
			[]string{"NEW_LONG", "HELD"},
		)
		require.Equal(t, []string{"NEW_SHORT"}, shorts)
		require.Equal(t, []string{"NEW_LONG"}, longs)

		// filtering an already-filtered list changes nothing
		again, _ := handler.RemoveDuplicates(shorts, longs)
		require.Equal(t, shorts, again)
	})

	t.Run("increment ages bumps book and store together", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := NewBookService(params, positionRepository, nil)

		positionRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, nil)
		require.NoError(t, handler.Open(ctx, "AAPL", domain.PositionSideLong))

		positionRepository.EXPECT().IncrementAges(nil).Return(nil)
		require.NoError(t, handler.IncrementAges(ctx))

		holdings := handler.Holdings()
		require.Len(t, holdings, 1)
		require.Equal(t, 1, holdings[0].Age)
	})

	t.Run("failed age persistence leaves memory unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := NewBookService(params, positionRepository, nil)

		positionRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, nil)
		require.NoError(t, handler.Open(ctx, "AAPL", domain.PositionSideLong))

		positionRepository.EXPECT().IncrementAges(nil).Return(errors.New("db is down"))
		require.Error(t, handler.IncrementAges(ctx))

		holdings := handler.Holdings()
		require.Len(t, holdings, 1)
		require.Equal(t, 0, holdings[0].Age)
	})

	t.Run("failed removal of a liquidated position surfaces a wrapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		tradeService := mock_service.NewMockTradeService(ctrl)
		handler := NewBookService(params, positionRepository, tradeService)

		positionRepository.EXPECT().List().Return([]model.Position{
			{Symbol: "OLD", Side: model.PositionSide_Long, Age: 6},
		}, nil)
		require.NoError(t, handler.Load(ctx))

		tradeService.EXPECT().Liquidate(ctx, "OLD").Return(nil)
		positionRepository.EXPECT().Remove(nil, "OLD").Return(errors.New("db is down"))

		_, err := handler.LiquidateStale(ctx)
		require.ErrorContains(t, err, "failed to remove liquidated position OLD")
	})

	t.Run("liquidate stale issues exactly one order per expired position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		tradeService := mock_service.NewMockTradeService(ctrl)
		handler := NewBookService(params, positionRepository, tradeService)

		positionRepository.EXPECT().List().Return([]model.Position{
			{Symbol: "OLD_A", Side: model.PositionSide_Short, Age: 5},
			{Symbol: "OLD_B", Side: model.PositionSide_Long, Age: 7},
			{Symbol: "FRESH", Side: model.PositionSide_Long, Age: 2},
		}, nil)
		require.NoError(t, handler.Load(ctx))

		tradeService.EXPECT().Liquidate(ctx, "OLD_A").Return(nil).Times(1)
		tradeService.EXPECT().Liquidate(ctx, "OLD_B").Return(nil).Times(1)
		positionRepository.EXPECT().Remove(nil, "OLD_A").Return(nil)
		positionRepository.EXPECT().Remove(nil, "OLD_B").Return(nil)

		liquidated, err := handler.LiquidateStale(ctx)
		require.NoError(t, err)
		require.Equal(t, []string{"OLD_A", "OLD_B"}, liquidated)

		// the book no longer tracks the expired symbols, so a second
		// pass finds nothing to liquidate
		liquidated, err = handler.LiquidateStale(ctx)
		require.NoError(t, err)
		require.Empty(t, liquidated)
	})

	t.Run("open starts at age zero and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		positionRepository := mock_repository.NewMockPositionRepository(ctrl)
		handler := NewBookService(params, positionRepository, nil)

		positionRepository.EXPECT().Add(nil, model.Position{
			Symbol: "NVDA",
			Side:   model.PositionSide_Short,
			Age:    0,
		}).Return(nil, nil)

		require.NoError(t, handler.Open(ctx, "NVDA", domain.PositionSideShort))

		require.Equal(t, []domain.Holding{
			{Symbol: "NVDA", Side: domain.PositionSideShort, Age: 0},
		}, handler.Holdings())
	})
}
