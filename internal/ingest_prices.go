package internal

import (
	"database/sql"
	"fmt"
	"time"

	"streakfade/internal/db/models/postgres/public/model"
	"streakfade/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// IngestPrices backfills daily adjusted closes for one symbol into
// the adjusted_price table, for running the engine off stored data.
func IngestPrices(
	tx *sql.Tx,
	symbol string,
	lookbackDays int,
	adjPricesRepository repository.AdjustedPriceRepository,
) error {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -lookbackDays)
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}

	for iter.Next() {
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Price:     iter.Bar().AdjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	err := adjPricesRepository.Add(tx, models)
	if err != nil {
		return err
	}

	return nil
}

// UpdateUniversePrices ingests recent closes for every symbol in the
// current universe. Per-symbol failures are collected so one bad
// ticker does not abort the whole sync.
func UpdateUniversePrices(
	tx *sql.Tx,
	symbols []string,
	lookbackDays int,
	adjPricesRepository repository.AdjustedPriceRepository,
) error {
	if len(symbols) == 0 {
		return fmt.Errorf("no symbols to ingest prices for")
	}

	errors := []error{}

	for _, symbol := range symbols {
		err := IngestPrices(tx, symbol, lookbackDays, adjPricesRepository)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to ingest historical prices for %s: %w", symbol, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("failed to update %d/%d universe prices. first err: %w", len(errors), len(symbols), errors[0])
	}

	return nil
}
