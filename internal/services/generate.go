package services

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"insights-dashboard/internal/models"
)

// Demo catalog used when no CSV export is configured.
var (
	demoCountries = []models.Country{
		{Code: "US", Name: "United States"},
		{Code: "CA", Name: "Canada"},
		{Code: "UK", Name: "United Kingdom"},
		{Code: "DE", Name: "Germany"},
		{Code: "FR", Name: "France"},
		{Code: "JP", Name: "Japan"},
		{Code: "AU", Name: "Australia"},
	}

	demoStores = []models.Store{
		{ID: "store-1", Name: "Online Store"},
		{ID: "store-2", Name: "Mobile App"},
		{ID: "store-3", Name: "Retail Location A"},
		{ID: "store-4", Name: "Retail Location B"},
		{ID: "store-5", Name: "Marketplace"},
	}

	demoProducts = []models.Product{
		{ID: "product-1", Name: "Premium Subscription"},
		{ID: "product-2", Name: "Basic Subscription"},
		{ID: "product-3", Name: "Digital Download"},
		{ID: "product-4", Name: "Physical Product A"},
		{ID: "product-5", Name: "Physical Product B"},
		{ID: "product-6", Name: "Service Package"},
	}
)

// Generate produces count random transactions dated within the 30 days
// ending at end. Amounts land in [10, 500). The seed fixes everything but
// the transaction ids, so repeated runs show the same dashboard.
func Generate(seed uint64, count int, end time.Time) []models.Transaction {
	rng := rand.New(rand.NewPCG(seed, seed))

	transactions := make([]models.Transaction, 0, count)
	for range count {
		country := demoCountries[rng.IntN(len(demoCountries))]
		store := demoStores[rng.IntN(len(demoStores))]
		product := demoProducts[rng.IntN(len(demoProducts))]

		amount := float64(rng.IntN(490) + 10)
		date := end.AddDate(0, 0, -rng.IntN(30)).Format(dayFormat)

		transactions = append(transactions, models.Transaction{
			ID:          uuid.NewString(),
			Amount:      amount,
			Date:        date,
			CountryCode: country.Code,
			CountryName: country.Name,
			StoreID:     store.ID,
			StoreName:   store.Name,
			ProductID:   product.ID,
			ProductName: product.Name,
		})
	}

	return transactions
}
