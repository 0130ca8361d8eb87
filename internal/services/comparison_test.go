package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"insights-dashboard/internal/models"
)

func comparisonFixture() *Dataset {
	return NewDataset([]models.Transaction{
		makeTransaction("t1", 100, "2024-01-02", "US", "s1", "p1"),
		makeTransaction("t2", 50, "2024-01-03", "CA", "s2", "p2"),
		makeTransaction("t3", 30, "2024-01-02", "US", "s1", "p2"),
		makeTransaction("t4", 20, "2024-01-03", "US", "s2", "p1"),
	})
}

func TestComparison_Products(t *testing.T) {
	data := comparisonFixture()

	got := data.Comparison(DimensionProducts, Query{From: "2024-01-01", To: "2024-01-04"})

	want := []models.ComparisonPoint{
		{Date: "2024-01-01", ID: "p1", Name: "Product p1", Value: 0},
		{Date: "2024-01-02", ID: "p1", Name: "Product p1", Value: 100},
		{Date: "2024-01-03", ID: "p1", Name: "Product p1", Value: 20},
		{Date: "2024-01-04", ID: "p1", Name: "Product p1", Value: 0},
		{Date: "2024-01-01", ID: "p2", Name: "Product p2", Value: 0},
		{Date: "2024-01-02", ID: "p2", Name: "Product p2", Value: 30},
		{Date: "2024-01-03", ID: "p2", Name: "Product p2", Value: 50},
		{Date: "2024-01-04", ID: "p2", Name: "Product p2", Value: 0},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Comparison mismatch (-want +got):\n%s", diff)
	}
}

func TestComparison_OnePointPerDayPerEntity(t *testing.T) {
	data := comparisonFixture()

	got := data.Comparison(DimensionCountries, Query{From: "2024-01-01", To: "2024-01-10"})

	days := 10
	perEntity := make(map[string]int)
	seen := make(map[string]map[string]bool)
	for _, p := range got {
		perEntity[p.ID]++
		if seen[p.ID] == nil {
			seen[p.ID] = make(map[string]bool)
		}
		if seen[p.ID][p.Date] {
			t.Errorf("duplicate point for %s on %s", p.ID, p.Date)
		}
		seen[p.ID][p.Date] = true
	}

	if len(perEntity) != 2 {
		t.Fatalf("got %d entities, want 2 (US, CA)", len(perEntity))
	}
	for id, n := range perEntity {
		if n != days {
			t.Errorf("entity %s has %d points, want %d", id, n, days)
		}
	}
}

func TestComparison_AbsentEntityOmitted(t *testing.T) {
	data := comparisonFixture()

	// p2 is filtered out by the store selection on s1.
	got := data.Comparison(DimensionProducts, Query{
		From:   "2024-01-01",
		To:     "2024-01-04",
		Stores: []string{"s1"},
	})

	ids := make(map[string]bool)
	for _, p := range got {
		ids[p.ID] = true
	}
	if !ids["p1"] {
		t.Error("p1 should be present")
	}
	if !ids["p2"] {
		t.Error("p2 should be present (t3 is p2 at s1)")
	}
	if ids["p3"] {
		t.Error("p3 has no transactions and must be omitted")
	}

	// Narrow further: only p1 survives country+store selection.
	got = data.Comparison(DimensionProducts, Query{
		From:      "2024-01-01",
		To:        "2024-01-04",
		Stores:    []string{"s2"},
		Countries: []string{"US"},
	})
	ids = make(map[string]bool)
	for _, p := range got {
		ids[p.ID] = true
	}
	if !ids["p1"] || ids["p2"] {
		t.Errorf("want only p1 after narrowing, got %v", ids)
	}
}

func TestComparison_OwnDimensionSelectionApplies(t *testing.T) {
	data := comparisonFixture()

	got := data.Comparison(DimensionProducts, Query{
		From:     "2024-01-01",
		To:       "2024-01-04",
		Products: []string{"p2"},
	})

	for _, p := range got {
		if p.ID != "p2" {
			t.Errorf("product selection should gate the compared entities, saw %s", p.ID)
		}
	}
}

func TestComparison_Stores(t *testing.T) {
	data := comparisonFixture()

	got := data.Comparison(DimensionStores, Query{From: "2024-01-01", To: "2024-01-04"})

	totals := make(map[string]float64)
	names := make(map[string]string)
	for _, p := range got {
		totals[p.ID] += p.Value
		names[p.ID] = p.Name
	}

	if totals["s1"] != 130 || totals["s2"] != 70 {
		t.Errorf("store totals = %v, want s1=130 s2=70", totals)
	}
	if names["s1"] != "Store s1" {
		t.Errorf("store name = %q, want %q", names["s1"], "Store s1")
	}
}

func TestComparison_FirstEncounterOrder(t *testing.T) {
	data := comparisonFixture()

	got := data.Comparison(DimensionCountries, Query{From: "2024-01-01", To: "2024-01-04"})

	// US appears first in the filtered data, so its block comes first.
	if got[0].ID != "US" {
		t.Errorf("first entity = %s, want US", got[0].ID)
	}
	if got[len(got)-1].ID != "CA" {
		t.Errorf("last entity = %s, want CA", got[len(got)-1].ID)
	}
}

func TestComparison_MalformedRange(t *testing.T) {
	data := comparisonFixture()

	if got := data.Comparison(DimensionProducts, Query{From: "", To: ""}); got != nil {
		t.Errorf("malformed range should produce nil, got %v", got)
	}
}
