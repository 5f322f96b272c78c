package repository

import (
	"fmt"
	"os"

	"streakfade/internal/domain"

	"github.com/gocarina/gocsv"
)

// SnapshotRepository loads a day's coarse fundamental rows from a
// csv file, for driving the engine without a live broker feed.
// Expected header: symbol,adjusted_price,volume,has_fundamental_data
type SnapshotRepository interface {
	Load(path string) ([]domain.CoarseFundamental, error)
}

type snapshotRepositoryHandler struct{}

func NewSnapshotRepository() SnapshotRepository {
	return snapshotRepositoryHandler{}
}

func (h snapshotRepositoryHandler) Load(path string) ([]domain.CoarseFundamental, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %s: %w", path, err)
	}
	defer f.Close()

	out := []domain.CoarseFundamental{}
	if err := gocsv.UnmarshalFile(f, &out); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}

	return out, nil
}
