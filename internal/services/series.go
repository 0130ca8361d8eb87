package services

import "insights-dashboard/internal/models"

// RevenueByDay buckets the filtered transactions into one point per
// calendar day across [from, to] inclusive, zero-filled where the day saw
// no activity, ascending by date. The filter step uses the strict open
// interval, so the two boundary days always come back as zeros unless the
// range overlaps itself.
func (d *Dataset) RevenueByDay(q Query) []models.SeriesPoint {
	from, to, ok := q.dateRange()
	if !ok {
		return nil
	}

	working := filterByRange(d.transactions, from, to)
	working = filterBySelection(working, q.Products, productKey)
	working = filterBySelection(working, q.Countries, countryKey)
	working = filterBySelection(working, q.Stores, storeKey)

	keys := dayKeys(from, to)
	buckets := make(map[string]float64, len(keys))
	for _, day := range keys {
		buckets[day] = 0
	}

	// A date outside the enumerated keys is dropped, not an error.
	for _, t := range working {
		if _, ok := buckets[t.Date]; ok {
			buckets[t.Date] += t.Amount
		}
	}

	points := make([]models.SeriesPoint, 0, len(keys))
	for _, day := range keys {
		points = append(points, models.SeriesPoint{Date: day, Revenue: buckets[day]})
	}
	return points
}
