package api

import (
	"context"
	"fmt"

	"streakfade/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m *ApiHandler) strategyRuns(ctx *gin.Context) {
	runs, err := m.StrategyRunRepository.List()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list strategy runs: %w", err), ctx)
		return
	}

	ctx.JSON(200, gin.H{"runs": runs})
}

func (m *ApiHandler) tradeOrders(ctx *gin.Context) {
	c := logger.AddToContext(context.Background(), logger.New())

	// refresh pending/submitted statuses before listing
	if err := m.TradeService.UpdateAllPendingOrders(c); err != nil {
		returnErrorJson(fmt.Errorf("failed to reconcile trade orders: %w", err), ctx)
		return
	}

	orders, err := m.TradeOrderRepository.List()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list trade orders: %w", err), ctx)
		return
	}

	ctx.JSON(200, gin.H{"orders": orders})
}
