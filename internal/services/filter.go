package services

import (
	"time"

	"insights-dashboard/internal/models"
)

// The totals, rankings and scoped stats all use a strict open interval:
// a transaction dated exactly on either bound is excluded. The day-key
// enumeration used by the time series is closed on both ends. That
// asymmetry is deliberate dashboard behavior (boundary days render as
// zero-valued points) and is pinned by tests; do not unify the two.

// filterByRange keeps transactions with from < date < to. Transactions
// whose date fails to parse are excluded rather than guessed at.
func filterByRange(transactions []models.Transaction, from, to time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		day, err := time.Parse(dayFormat, t.Date)
		if err != nil {
			continue
		}
		if day.After(from) && day.Before(to) {
			out = append(out, t)
		}
	}
	return out
}

// filterBySelection keeps transactions whose key is in the selection.
// An empty selection is the identity filter.
func filterBySelection(transactions []models.Transaction, selected []string, key func(models.Transaction) string) []models.Transaction {
	if len(selected) == 0 {
		return transactions
	}
	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if _, ok := set[key(t)]; ok {
			out = append(out, t)
		}
	}
	return out
}

func countryKey(t models.Transaction) string { return t.CountryCode }
func storeKey(t models.Transaction) string   { return t.StoreID }
func productKey(t models.Transaction) string { return t.ProductID }

// dayKeys enumerates every calendar day in [from, to] inclusive, ascending.
// An inverted range produces no keys.
func dayKeys(from, to time.Time) []string {
	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(dayFormat))
	}
	return keys
}
