package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/db/models/postgres/public/table"
)

// StrategyRunRepository is the observability sink for rebalance
// cycles - one row per emitted sample. Writes are best-effort; the
// caller logs and moves on when they fail.
type StrategyRunRepository interface {
	Add(run model.StrategyRun) (*model.StrategyRun, error)
	List() ([]model.StrategyRun, error)
}

type strategyRunRepositoryHandler struct {
	Db *sql.DB
}

func NewStrategyRunRepository(db *sql.DB) StrategyRunRepository {
	return strategyRunRepositoryHandler{Db: db}
}

func (h strategyRunRepositoryHandler) Add(run model.StrategyRun) (*model.StrategyRun, error) {
	run.CreatedAt = time.Now().UTC()
	query := table.StrategyRun.
		INSERT(table.StrategyRun.MutableColumns).
		MODEL(run).
		RETURNING(table.StrategyRun.AllColumns)

	out := model.StrategyRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert strategy run: %w", err)
	}

	return &out, nil
}

func (h strategyRunRepositoryHandler) List() ([]model.StrategyRun, error) {
	query := table.StrategyRun.
		SELECT(table.StrategyRun.AllColumns).
		ORDER_BY(table.StrategyRun.RunDate.DESC())

	out := []model.StrategyRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list strategy runs: %w", err)
	}

	return out, nil
}
