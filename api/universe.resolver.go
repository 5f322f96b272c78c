package api

import (
	"github.com/gin-gonic/gin"
)

func (m *ApiHandler) universe(ctx *gin.Context) {
	symbols := m.UniverseService.Current()
	ctx.JSON(200, gin.H{
		"symbols": symbols,
		"count":   len(symbols),
	})
}
