package repository

import (
	"database/sql"
	"fmt"
	"time"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// PositionRepository persists the holding book so position ages
// survive a restart. The in-memory book stays authoritative within
// a cycle; this is write-behind bookkeeping.
type PositionRepository interface {
	List() ([]model.Position, error)
	Add(tx *sql.Tx, p model.Position) (*model.Position, error)
	Remove(tx *sql.Tx, symbol string) error
	IncrementAges(tx *sql.Tx) error
}

type positionRepositoryHandler struct {
	Db *sql.DB
}

func NewPositionRepository(db *sql.DB) PositionRepository {
	return positionRepositoryHandler{Db: db}
}

func (h positionRepositoryHandler) List() ([]model.Position, error) {
	query := table.Position.
		SELECT(table.Position.AllColumns).
		ORDER_BY(table.Position.Symbol.ASC())

	out := []model.Position{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	return out, nil
}

func (h positionRepositoryHandler) Add(tx *sql.Tx, p model.Position) (*model.Position, error) {
	p.OpenedAt = time.Now().UTC()
	p.ModifiedAt = time.Now().UTC()
	query := table.Position.
		INSERT(table.Position.MutableColumns).
		MODEL(p).
		ON_CONFLICT(table.Position.Symbol).
		DO_UPDATE(postgres.SET(
			table.Position.Side.SET(table.Position.EXCLUDED.Side),
			table.Position.Age.SET(table.Position.EXCLUDED.Age),
			table.Position.OpenedAt.SET(table.Position.EXCLUDED.OpenedAt),
			table.Position.ModifiedAt.SET(table.Position.EXCLUDED.ModifiedAt),
		)).
		RETURNING(table.Position.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.Position{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert position %s: %w", p.Symbol, err)
	}

	return &out, nil
}

func (h positionRepositoryHandler) Remove(tx *sql.Tx, symbol string) error {
	query := table.Position.
		DELETE().
		WHERE(table.Position.Symbol.EQ(postgres.String(symbol)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete position %s: %w", symbol, err)
	}

	return nil
}

func (h positionRepositoryHandler) IncrementAges(tx *sql.Tx) error {
	query := table.Position.
		UPDATE(table.Position.Age, table.Position.ModifiedAt).
		SET(
			table.Position.Age.ADD(postgres.Int(1)),
			postgres.TimestampzT(time.Now().UTC()),
		).
		WHERE(postgres.Bool(true))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to increment position ages: %w", err)
	}

	return nil
}
