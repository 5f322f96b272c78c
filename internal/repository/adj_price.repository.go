package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/db/models/postgres/public/table"
	"streakfade/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error
	// ListCloses returns up to `days` most recent closes per symbol,
	// oldest first.
	ListCloses(symbols []string, days int) (map[string][]domain.AssetPrice, error)
	LatestDate(symbol string) (*time.Time, error)
}

type adjustedPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return adjustedPriceRepositoryHandler{Db: db}
}

func (h adjustedPriceRepositoryHandler) Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}

	query := table.AdjustedPrice.
		INSERT(table.AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			table.AdjustedPrice.Symbol, table.AdjustedPrice.Date,
		).DO_UPDATE(
		postgres.SET(
			table.AdjustedPrice.Price.SET(table.AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	return nil
}

func (h adjustedPriceRepositoryHandler) ListCloses(symbols []string, days int) (map[string][]domain.AssetPrice, error) {
	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.AllColumns).
		WHERE(table.AdjustedPrice.Symbol.IN(symbolExpressions...)).
		ORDER_BY(table.AdjustedPrice.Symbol.ASC(), table.AdjustedPrice.Date.ASC())

	rows := []model.AdjustedPrice{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list closes for %d symbols: %w", len(symbols), err)
	}

	out := map[string][]domain.AssetPrice{}
	for _, row := range rows {
		out[row.Symbol] = append(out[row.Symbol], domain.AssetPrice{
			Symbol: row.Symbol,
			Price:  row.Price,
			Date:   row.Date,
		})
	}
	for symbol, prices := range out {
		if len(prices) > days {
			out[symbol] = prices[len(prices)-days:]
		}
	}

	return out, nil
}

func (h adjustedPriceRepositoryHandler) LatestDate(symbol string) (*time.Time, error) {
	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.Date).
		WHERE(table.AdjustedPrice.Symbol.EQ(postgres.String(symbol))).
		ORDER_BY(table.AdjustedPrice.Date.DESC()).
		LIMIT(1)

	out := model.AdjustedPrice{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", symbol, err)
	}

	return &out.Date, nil
}
