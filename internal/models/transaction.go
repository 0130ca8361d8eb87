package models

// Transaction is one purchase event. Dates are calendar days carried as
// ISO yyyy-MM-dd strings; each dimension is a stable identifier plus the
// denormalized display name it had at generation time.
type Transaction struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	CountryCode string  `json:"country_code"`
	CountryName string  `json:"country_name"`
	StoreID     string  `json:"store_id"`
	StoreName   string  `json:"store_name"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
}

type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Store struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GlobalStats is the dashboard headline block: overall totals plus the
// top-3 country rankings for the current filters.
type GlobalStats struct {
	TotalTransactions          int           `json:"total_transactions"`
	TotalAmount                float64       `json:"total_amount"`
	AvgAmount                  float64       `json:"avg_amount"`
	TopCountriesByAmount       []CountryRank `json:"top_countries_by_amount"`
	TopCountriesByTransactions []CountryRank `json:"top_countries_by_transactions"`
}

// CountryRank is one ranking row. Value is the summed amount for the
// by-amount ranking and the transaction count for the by-count ranking.
type CountryRank struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ScopedStats are totals restricted to a single selected dimension.
// A nil *ScopedStats means "nothing selected", which callers must keep
// distinct from selected-but-zero.
type ScopedStats struct {
	TotalTransactions int     `json:"total_transactions"`
	TotalAmount       float64 `json:"total_amount"`
	AvgAmount         float64 `json:"avg_amount"`
}

// SeriesPoint is one day of the dense revenue-over-time series.
type SeriesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ComparisonPoint is one (day, entity) cell of a multi-line comparison
// chart. Every entity present in the filtered data gets one point per day
// in range; entities with no matching transactions are omitted entirely.
type ComparisonPoint struct {
	Date  string  `json:"date"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
