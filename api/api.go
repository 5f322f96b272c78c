package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"streakfade/internal/app"
	"streakfade/internal/domain"
	"streakfade/internal/repository"
	"streakfade/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                    *sql.DB
	RebalancerHandler     *app.RebalancerHandler
	UniverseService       service.UniverseService
	BookService           service.BookService
	TradeService          service.TradeService
	AlpacaRepository      repository.AlpacaRepository
	SnapshotRepository    repository.SnapshotRepository
	AdjPriceRepository    repository.AdjustedPriceRepository
	TradeOrderRepository  repository.TradeOrderRepository
	StrategyRunRepository repository.StrategyRunRepository
	// SnapshotFile, when set, points at a csv the rebalance command
	// uses instead of the live broker snapshot.
	SnapshotFile string
}

func (m *ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "streakfade is up"})
	})
	router.GET("/holdings", m.holdings)
	router.GET("/positions", m.positions)
	router.GET("/universe", m.universe)
	router.GET("/tradeOrders", m.tradeOrders)
	router.GET("/strategyRuns", m.strategyRuns)
	router.POST("/rebalance", m.rebalance)

	return router
}

// LoadSnapshot returns the day's coarse fundamental rows, from the
// configured csv file when set, otherwise from the broker.
func (m *ApiHandler) LoadSnapshot(ctx context.Context) ([]domain.CoarseFundamental, error) {
	if m.SnapshotFile != "" {
		return m.SnapshotRepository.Load(m.SnapshotFile)
	}
	return m.AlpacaRepository.GetCoarseSnapshot(ctx, nil)
}

func (m *ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func (m *ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	log := zap.S()

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("api request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
