package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type holdingResponse struct {
	Symbol string `json:"symbol"`
	Side   string `json:"side"`
	Age    int    `json:"age"`
}

func (m *ApiHandler) holdings(ctx *gin.Context) {
	out := []holdingResponse{}
	for _, h := range m.BookService.Holdings() {
		out = append(out, holdingResponse{
			Symbol: h.Symbol,
			Side:   string(h.Side),
			Age:    h.Age,
		})
	}

	ctx.JSON(200, gin.H{
		"holdings": out,
		"count":    len(out),
	})
}

// positions is the broker-side view, for reconciling against the
// book's own holdings.
func (m *ApiHandler) positions(ctx *gin.Context) {
	positions, err := m.AlpacaRepository.GetPositions()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get broker positions: %w", err), ctx)
		return
	}

	ctx.JSON(200, gin.H{"positions": positions})
}
