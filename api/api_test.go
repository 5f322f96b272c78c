package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"streakfade/internal/app"
	"streakfade/internal/domain"
	mock_repository "streakfade/internal/repository/mocks"
	"streakfade/internal/service"
	mock_service "streakfade/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) *ApiHandler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	params := domain.StrategyParams{}.WithDefaults()

	positionRepository := mock_repository.NewMockPositionRepository(ctrl)
	positionRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, nil).AnyTimes()

	universeService := service.NewUniverseService(params)
	universeService.Rebuild(context.Background(), []domain.CoarseFundamental{
		{Symbol: "AAPL", AdjustedPrice: 180, Volume: 5e7, HasFundamentalData: true},
		{Symbol: "MSFT", AdjustedPrice: 400, Volume: 3e7, HasFundamentalData: true},
	})

	bookService := service.NewBookService(params, positionRepository, nil)
	require.NoError(t, bookService.Open(context.Background(), "AAPL", domain.PositionSideShort))

	return &ApiHandler{
		UniverseService: universeService,
		BookService:     bookService,
	}
}

func Test_holdingsEndpoint(t *testing.T) {
	router := newTestHandler(t).InitializeRouterEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/holdings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Holdings []holdingResponse `json:"holdings"`
		Count    int               `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, 1, response.Count)
	require.Equal(t, holdingResponse{Symbol: "AAPL", Side: "short", Age: 0}, response.Holdings[0])
}

func Test_rebalanceEndpoint_marketClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
	alpacaRepository.EXPECT().IsMarketOpen().Return(false, nil)

	handler := &ApiHandler{AlpacaRepository: alpacaRepository}
	router := handler.InitializeRouterEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/rebalance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "market closed")
}

func Test_rebalanceEndpoint_marketOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	params := domain.StrategyParams{}.WithDefaults()

	alpacaRepository := mock_repository.NewMockAlpacaRepository(ctrl)
	positionRepository := mock_repository.NewMockPositionRepository(ctrl)
	historyService := mock_service.NewMockHistoryService(ctrl)
	tradeService := mock_service.NewMockTradeService(ctrl)

	universeService := service.NewUniverseService(params)
	bookService := service.NewBookService(params, positionRepository, tradeService)

	handler := &ApiHandler{
		RebalancerHandler: &app.RebalancerHandler{
			UniverseService: universeService,
			StreakService:   service.NewStreakService(historyService, params),
			BookService:     bookService,
			TradeService:    tradeService,
			Params:          params,
		},
		UniverseService:  universeService,
		BookService:      bookService,
		AlpacaRepository: alpacaRepository,
	}
	router := handler.InitializeRouterEngine()

	// the trigger loads the day's snapshot, rebuilds the universe,
	// then runs the cycle: a streaking symbol in the snapshot ends up
	// as an order
	alpacaRepository.EXPECT().IsMarketOpen().Return(true, nil)
	alpacaRepository.EXPECT().GetCoarseSnapshot(gomock.Any(), gomock.Nil()).Return([]domain.CoarseFundamental{
		{Symbol: "UPST", AdjustedPrice: 100, Volume: 1e7, HasFundamentalData: true},
	}, nil)
	positionRepository.EXPECT().IncrementAges(nil).Return(nil)
	historyService.EXPECT().
		GetAlignedCloses(gomock.Any(), []string{"UPST"}, params.StreakLength+1).
		Return(map[string][]float64{
			"UPST": {10, 11, 12, 13, 14, 15},
		}, nil)
	tradeService.EXPECT().SetTargetAllocation(gomock.Any(), "UPST", params.AllocationPct.Neg()).Return(nil)
	positionRepository.EXPECT().Add(nil, gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/rebalance", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"UPST"}, universeService.Current())
	require.Equal(t, []domain.Holding{
		{Symbol: "UPST", Side: domain.PositionSideShort, Age: 0},
	}, bookService.Holdings())
}

func Test_universeEndpoint(t *testing.T) {
	router := newTestHandler(t).InitializeRouterEngine()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/universe", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Symbols []string `json:"symbols"`
		Count   int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, []string{"MSFT", "AAPL"}, response.Symbols)
	require.Equal(t, 2, response.Count)
}
