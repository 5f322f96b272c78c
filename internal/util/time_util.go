package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// FormatDate collapses a timestamp to its UTC calendar day, the key
// used to align price series across symbols.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layout)
}
