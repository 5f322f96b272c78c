package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"streakfade/api"
	"streakfade/internal"
	"streakfade/internal/app"
	"streakfade/internal/logger"
	"streakfade/internal/repository"
	"streakfade/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}
	params := secrets.Strategy

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	alpacaRepository := repository.NewAlpacaRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret, secrets.Alpaca.Endpoint)
	if strings.EqualFold(os.Getenv("STREAKFADE_ENV"), "test") {
		alpacaRepository = NewMockAlpacaRepository(alpacaRepository)
	}

	tradeOrderRepository := repository.NewTradeOrderRepository(dbConn)
	positionRepository := repository.NewPositionRepository(dbConn)
	strategyRunRepository := repository.NewStrategyRunRepository(dbConn)
	adjPriceRepository := repository.NewAdjustedPriceRepository(dbConn)
	snapshotRepository := repository.NewSnapshotRepository()

	var historyService service.HistoryService = service.NewAlpacaHistoryService(alpacaRepository)
	if secrets.SnapshotFile != "" {
		// csv-driven runs read prices ingested into the db instead
		// of hitting the broker
		historyService = service.NewDbHistoryService(adjPriceRepository)
	}

	universeService := service.NewUniverseService(params)
	streakService := service.NewStreakService(historyService, params)
	tradeService := service.NewTradeService(dbConn, alpacaRepository, tradeOrderRepository)
	bookService := service.NewBookService(params, positionRepository, tradeService)

	ctx := logger.AddToContext(context.Background(), logger.New())
	if err := bookService.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore holdings: %w", err)
	}

	rebalancerHandler := &app.RebalancerHandler{
		UniverseService:       universeService,
		StreakService:         streakService,
		BookService:           bookService,
		TradeService:          tradeService,
		StrategyRunRepository: strategyRunRepository,
		Params:                params,
	}

	apiHandler := &api.ApiHandler{
		Db:                    dbConn,
		RebalancerHandler:     rebalancerHandler,
		UniverseService:       universeService,
		BookService:           bookService,
		TradeService:          tradeService,
		AlpacaRepository:      alpacaRepository,
		SnapshotRepository:    snapshotRepository,
		AdjPriceRepository:    adjPriceRepository,
		TradeOrderRepository:  tradeOrderRepository,
		StrategyRunRepository: strategyRunRepository,
		SnapshotFile:          secrets.SnapshotFile,
	}

	return apiHandler, nil
}
