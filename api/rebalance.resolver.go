package api

import (
	"context"
	"fmt"

	"streakfade/internal/logger"

	"github.com/gin-gonic/gin"
)

func (m *ApiHandler) rebalance(ctx *gin.Context) {
	c := logger.AddToContext(context.Background(), logger.New())

	// the scheduler fires on calendar days, not trading days
	open, err := m.AlpacaRepository.IsMarketOpen()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to check market clock: %w", err), ctx)
		return
	}
	if !open {
		ctx.JSON(200, gin.H{"skipped": "market closed"})
		return
	}

	snapshot, err := m.LoadSnapshot(c)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to load coarse snapshot: %w", err), ctx)
		return
	}
	universe := m.RebalancerHandler.RefreshUniverse(c, snapshot)

	if err := m.RebalancerHandler.Rebalance(c); err != nil {
		returnErrorJson(fmt.Errorf("failed to rebalance: %w", err), ctx)
		return
	}

	ctx.JSON(200, gin.H{
		"success":  "true",
		"universe": len(universe),
		"holdings": m.BookService.Len(),
	})
}
