package domain

import "time"

type AssetPrice struct {
	Symbol string
	Price  float64
	Date   time.Time
}

// CoarseFundamental is one row of the day's raw instrument snapshot,
// before any universe filtering has run.
type CoarseFundamental struct {
	Symbol             string  `csv:"symbol" json:"symbol"`
	AdjustedPrice      float64 `csv:"adjusted_price" json:"adjustedPrice"`
	Volume             float64 `csv:"volume" json:"volume"`
	HasFundamentalData bool    `csv:"has_fundamental_data" json:"hasFundamentalData"`
}

func (c CoarseFundamental) DollarVolume() float64 {
	return c.AdjustedPrice * c.Volume
}
