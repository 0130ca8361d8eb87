package services

import (
	"sort"

	"insights-dashboard/internal/models"
)

const topCountryLimit = 3

type countryTotals struct {
	code   string
	amount float64
	count  int
}

// GlobalStats computes the headline totals and top-country rankings for
// the query's date range, narrowed by the country and store selections.
// Product selection does not apply here; the headline block always covers
// every product, matching the dashboard layout.
func (d *Dataset) GlobalStats(q Query) models.GlobalStats {
	stats := models.GlobalStats{
		TopCountriesByAmount:       []models.CountryRank{},
		TopCountriesByTransactions: []models.CountryRank{},
	}

	from, to, ok := q.dateRange()
	if !ok {
		return stats
	}

	working := filterByRange(d.transactions, from, to)
	working = filterBySelection(working, q.Countries, countryKey)
	working = filterBySelection(working, q.Stores, storeKey)

	for _, t := range working {
		stats.TotalTransactions++
		stats.TotalAmount += t.Amount
	}
	if stats.TotalTransactions > 0 {
		stats.AvgAmount = stats.TotalAmount / float64(stats.TotalTransactions)
	}

	// Group once in encounter order; both rankings reuse the groups so a
	// tie keeps the order the countries first appeared in.
	groups := make(map[string]*countryTotals)
	var order []*countryTotals
	for _, t := range working {
		g, seen := groups[t.CountryCode]
		if !seen {
			g = &countryTotals{code: t.CountryCode}
			groups[t.CountryCode] = g
			order = append(order, g)
		}
		g.amount += t.Amount
		g.count++
	}

	stats.TopCountriesByAmount = d.rankCountries(order, func(g *countryTotals) float64 { return g.amount })
	stats.TopCountriesByTransactions = d.rankCountries(order, func(g *countryTotals) float64 { return float64(g.count) })

	return stats
}

func (d *Dataset) rankCountries(groups []*countryTotals, metric func(*countryTotals) float64) []models.CountryRank {
	ranked := make([]*countryTotals, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metric(ranked[i]) > metric(ranked[j])
	})

	if len(ranked) > topCountryLimit {
		ranked = ranked[:topCountryLimit]
	}

	out := make([]models.CountryRank, 0, len(ranked))
	for _, g := range ranked {
		out = append(out, models.CountryRank{
			Code:  g.code,
			Name:  d.countryName(g.code),
			Value: metric(g),
		})
	}
	return out
}

// CountryStats computes totals scoped to the selected countries. A nil
// result means no countries are selected, which the UI renders as
// "select filters to view stats" rather than zeros.
func (d *Dataset) CountryStats(q Query) *models.ScopedStats {
	if len(q.Countries) == 0 {
		return nil
	}
	return d.scopedStats(q, q.Countries, countryKey)
}

// StoreStats is CountryStats for the store dimension.
func (d *Dataset) StoreStats(q Query) *models.ScopedStats {
	if len(q.Stores) == 0 {
		return nil
	}
	return d.scopedStats(q, q.Stores, storeKey)
}

func (d *Dataset) scopedStats(q Query, selected []string, key func(models.Transaction) string) *models.ScopedStats {
	stats := &models.ScopedStats{}

	from, to, ok := q.dateRange()
	if !ok {
		return stats
	}

	working := filterByRange(d.transactions, from, to)
	working = filterBySelection(working, selected, key)

	for _, t := range working {
		stats.TotalTransactions++
		stats.TotalAmount += t.Amount
	}
	if stats.TotalTransactions > 0 {
		stats.AvgAmount = stats.TotalAmount / float64(stats.TotalTransactions)
	}
	return stats
}
