package services

import "insights-dashboard/internal/models"

// Comparison builds one dense per-day series for every entity of the
// chosen dimension that survives the filters, flattened into a single
// point list for the multi-line chart. All three selections narrow the
// pool first, including the one matching the dimension being compared.
//
// Entities with no matching transactions are omitted; present entities
// get a zero point for each day they were quiet. Points come out grouped
// by entity in first-encounter order, days ascending within an entity.
func (d *Dataset) Comparison(dim Dimension, q Query) []models.ComparisonPoint {
	from, to, ok := q.dateRange()
	if !ok {
		return nil
	}

	working := filterByRange(d.transactions, from, to)
	working = filterBySelection(working, q.Products, productKey)
	working = filterBySelection(working, q.Countries, countryKey)
	working = filterBySelection(working, q.Stores, storeKey)

	var key func(models.Transaction) string
	var name func(string) string
	switch dim {
	case DimensionCountries:
		key, name = countryKey, d.countryName
	case DimensionStores:
		key, name = storeKey, d.storeName
	default:
		key, name = productKey, d.productName
	}

	daily := make(map[string]map[string]float64)
	var order []string
	for _, t := range working {
		id := key(t)
		byDay, seen := daily[id]
		if !seen {
			byDay = make(map[string]float64)
			daily[id] = byDay
			order = append(order, id)
		}
		byDay[t.Date] += t.Amount
	}

	keys := dayKeys(from, to)
	points := make([]models.ComparisonPoint, 0, len(order)*len(keys))
	for _, id := range order {
		entityName := name(id)
		for _, day := range keys {
			points = append(points, models.ComparisonPoint{
				Date:  day,
				ID:    id,
				Name:  entityName,
				Value: daily[id][day],
			})
		}
	}
	return points
}
