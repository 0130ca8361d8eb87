package services

import (
	"slices"

	"insights-dashboard/internal/models"
)

// Dataset is an immutable snapshot of the transaction list plus the
// identifier-to-name indexes the aggregators need for display names.
// The indexes are built once per snapshot with first-match-wins semantics:
// the name stored for an identifier is the one carried by the earliest
// transaction using it, which also fixes ranking display names when a
// filter hides that transaction.
type Dataset struct {
	transactions []models.Transaction

	countryNames map[string]string
	storeNames   map[string]string
	productNames map[string]string

	countries []models.Country
	stores    []models.Store
	products  []models.Product
}

// NewDataset copies the given transactions and indexes them. The snapshot
// never changes afterwards, so every aggregator call over it is a pure
// function of the Query alone.
func NewDataset(transactions []models.Transaction) *Dataset {
	d := &Dataset{
		transactions: slices.Clone(transactions),
		countryNames: make(map[string]string),
		storeNames:   make(map[string]string),
		productNames: make(map[string]string),
	}

	for _, t := range d.transactions {
		if _, seen := d.countryNames[t.CountryCode]; !seen {
			d.countryNames[t.CountryCode] = t.CountryName
			d.countries = append(d.countries, models.Country{Code: t.CountryCode, Name: t.CountryName})
		}
		if _, seen := d.storeNames[t.StoreID]; !seen {
			d.storeNames[t.StoreID] = t.StoreName
			d.stores = append(d.stores, models.Store{ID: t.StoreID, Name: t.StoreName})
		}
		if _, seen := d.productNames[t.ProductID]; !seen {
			d.productNames[t.ProductID] = t.ProductName
			d.products = append(d.products, models.Product{ID: t.ProductID, Name: t.ProductName})
		}
	}

	return d
}

func (d *Dataset) Len() int {
	return len(d.transactions)
}

// Countries lists the distinct countries in first-encounter order, for
// populating the filter controls.
func (d *Dataset) Countries() []models.Country {
	return d.countries
}

func (d *Dataset) Stores() []models.Store {
	return d.stores
}

func (d *Dataset) Products() []models.Product {
	return d.products
}

// Stats reports snapshot shape for the admin endpoint.
func (d *Dataset) Stats() map[string]any {
	return map[string]any{
		"record_count": len(d.transactions),
		"countries":    len(d.countries),
		"stores":       len(d.stores),
		"products":     len(d.products),
	}
}

func (d *Dataset) countryName(code string) string {
	if name, ok := d.countryNames[code]; ok && name != "" {
		return name
	}
	return code
}

func (d *Dataset) storeName(id string) string {
	if name, ok := d.storeNames[id]; ok && name != "" {
		return name
	}
	return id
}

func (d *Dataset) productName(id string) string {
	if name, ok := d.productNames[id]; ok && name != "" {
		return name
	}
	return id
}
