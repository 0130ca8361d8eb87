package services

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// Query is the externally-owned set of dashboard parameters: a date range
// plus zero or more selected identifiers per dimension. An empty selection
// slice means "no restriction" for that dimension. The aggregators never
// mutate a Query; the HTTP layer builds a fresh one per request.
type Query struct {
	From      string
	To        string
	Countries []string
	Stores    []string
	Products  []string
}

// dateRange parses the query bounds. Malformed bounds are the caller's
// problem per the contract; the engine degrades to an empty range instead
// of failing.
func (q Query) dateRange() (from, to time.Time, ok bool) {
	from, err := time.Parse(dayFormat, q.From)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(dayFormat, q.To)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// DefaultRange returns the trailing 30-day window ending at now, the
// range the dashboard opens with.
func DefaultRange(now time.Time) (from, to string) {
	return now.AddDate(0, 0, -30).Format(dayFormat), now.Format(dayFormat)
}

// Dimension selects which entity a comparison groups by.
type Dimension string

const (
	DimensionProducts  Dimension = "products"
	DimensionCountries Dimension = "countries"
	DimensionStores    Dimension = "stores"
)

// ParseDimension validates a caller-supplied dimension name.
func ParseDimension(s string) (Dimension, error) {
	switch Dimension(s) {
	case DimensionProducts, DimensionCountries, DimensionStores:
		return Dimension(s), nil
	}
	return "", fmt.Errorf("unknown comparison dimension %q", s)
}
