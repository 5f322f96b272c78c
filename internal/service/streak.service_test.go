package service

import (
	"context"
	"testing"

	"streakfade/internal/domain"
	mock_service "streakfade/internal/service/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func defaultParams() domain.StrategyParams {
	return domain.StrategyParams{}.WithDefaults()
}

func Test_GetStreakingSymbols(t *testing.T) {
	ctx := context.Background()

	t.Run("five consecutive up days becomes a short candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), []string{"AAPL"}, 6).
			Return(map[string][]float64{
				"AAPL": {10, 11, 12, 13, 14, 15},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"AAPL"})
		require.NoError(t, err)
		require.Equal(t, []string{"AAPL"}, shorts)
		require.Empty(t, longs)
	})

	t.Run("five consecutive down days becomes a long candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), []string{"MSFT"}, 6).
			Return(map[string][]float64{
				"MSFT": {15, 14, 13, 12, 11, 10},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"MSFT"})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Equal(t, []string{"MSFT"}, longs)
	})

	t.Run("one flat day breaks the streak", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), []string{"AAPL"}, 6).
			Return(map[string][]float64{
				"AAPL": {10, 11, 11, 13, 14, 15},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"AAPL"})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Empty(t, longs)
	})

	t.Run("zero-filled history gap fabricates a flat day and breaks the streak", func(t *testing.T) {
		// a symbol whose history starts mid-window carries leading 0.0
		// closes: the first real close registers as an up day and an
		// all-zero prefix as flat days, so the streak never completes
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), []string{"IPO"}, 6).
			Return(map[string][]float64{
				"IPO": {0, 0, 12, 13, 14, 15},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"IPO"})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Empty(t, longs)
	})

	t.Run("missing close data degrades to empty lists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), gomock.Any(), 6).
			Return(nil, ErrNoCloseData)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"AAPL", "MSFT"})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Empty(t, longs)
	})

	t.Run("candidate lists are disjoint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		universe := []string{"UP", "DOWN", "CHOP"}
		history.EXPECT().
			GetAlignedCloses(gomock.Any(), universe, 6).
			Return(map[string][]float64{
				"UP":   {10, 11, 12, 13, 14, 15},
				"DOWN": {15, 14, 13, 12, 11, 10},
				"CHOP": {10, 11, 10, 11, 10, 11},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, universe)
		require.NoError(t, err)
		require.Equal(t, []string{"UP"}, shorts)
		require.Equal(t, []string{"DOWN"}, longs)
		for _, s := range shorts {
			require.NotContains(t, longs, s)
		}
	})

	t.Run("symbol with short history is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		history.EXPECT().
			GetAlignedCloses(gomock.Any(), []string{"NEW"}, 6).
			Return(map[string][]float64{
				"NEW": {12, 13, 14},
			}, nil)

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{"NEW"})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Empty(t, longs)
	})

	t.Run("empty universe short-circuits without a history call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		history := mock_service.NewMockHistoryService(ctrl)
		handler := NewStreakService(history, defaultParams())

		shorts, longs, err := handler.GetStreakingSymbols(ctx, []string{})
		require.NoError(t, err)
		require.Empty(t, shorts)
		require.Empty(t, longs)
	})
}

func Test_returnSigns(t *testing.T) {
	require.Equal(t, []float64{1, 1, -1, 0}, returnSigns([]float64{10, 11, 12, 11, 11}))
	require.Equal(t, []float64{0, 1}, returnSigns([]float64{0, 0, 5}))
}
