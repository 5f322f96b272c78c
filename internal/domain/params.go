package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StrategyParams holds every tunable of the streak-fade strategy.
// The zero value is not usable - call WithDefaults, or load from
// secrets and let WithDefaults fill the gaps.
type StrategyParams struct {
	// StreakLength is how many consecutive same-sign daily returns
	// constitute a streak worth fading.
	StreakLength int `json:"streakLength"`
	// AllocationPct is the fraction of account equity committed per
	// position.
	AllocationPct decimal.Decimal `json:"allocationPct"`
	// MaxHoldingPeriod is the number of cycles a position is kept
	// before forced liquidation, regardless of signal.
	MaxHoldingPeriod int     `json:"maxHoldingPeriod"`
	UniverseSize     int     `json:"universeSize"`
	MinPrice         float64 `json:"minPrice"`
	MaxPrice         float64 `json:"maxPrice"`
}

func (p StrategyParams) WithDefaults() StrategyParams {
	if p.StreakLength == 0 {
		p.StreakLength = 5
	}
	if p.AllocationPct.IsZero() {
		p.AllocationPct = decimal.NewFromFloat(0.01)
	}
	if p.MaxHoldingPeriod == 0 {
		p.MaxHoldingPeriod = 5
	}
	if p.UniverseSize == 0 {
		p.UniverseSize = 100
	}
	if p.MinPrice == 0 {
		p.MinPrice = 5.0
	}
	if p.MaxPrice == 0 {
		p.MaxPrice = 1000.0
	}
	return p
}

func (p StrategyParams) Validate() error {
	if p.StreakLength < 1 {
		return fmt.Errorf("streak length must be >= 1, got %d", p.StreakLength)
	}
	if p.AllocationPct.LessThanOrEqual(decimal.Zero) || p.AllocationPct.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("allocation pct must be in (0, 1], got %s", p.AllocationPct.String())
	}
	if p.MaxHoldingPeriod < 1 {
		return fmt.Errorf("max holding period must be >= 1, got %d", p.MaxHoldingPeriod)
	}
	if p.UniverseSize < 1 {
		return fmt.Errorf("universe size must be >= 1, got %d", p.UniverseSize)
	}
	if p.MinPrice < 0 || p.MaxPrice <= p.MinPrice {
		return fmt.Errorf("invalid price band [%f, %f]", p.MinPrice, p.MaxPrice)
	}
	return nil
}
