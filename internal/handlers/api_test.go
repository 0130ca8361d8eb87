package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"insights-dashboard/internal/models"
	"insights-dashboard/internal/services"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestDataset() *services.Dataset {
	return services.NewDataset([]models.Transaction{
		{
			ID:          "t1",
			Amount:      100,
			Date:        "2024-01-02",
			CountryCode: "US",
			CountryName: "United States",
			StoreID:     "s1",
			StoreName:   "Online Store",
			ProductID:   "p1",
			ProductName: "Premium Subscription",
		},
		{
			ID:          "t2",
			Amount:      50,
			Date:        "2024-01-03",
			CountryCode: "CA",
			CountryName: "Canada",
			StoreID:     "s2",
			StoreName:   "Mobile App",
			ProductID:   "p2",
			ProductName: "Basic Subscription",
		},
	})
}

type successEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

func doRequest(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, successEnvelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	handler(w, req)

	var envelope successEnvelope
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("response is not a JSON envelope: %v", err)
		}
	}
	return w, envelope
}

func TestHandleGlobalStats(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleGlobalStats, "/api/stats?from=2024-01-01&to=2024-01-04")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !envelope.Success {
		t.Error("success should be true")
	}

	var stats models.GlobalStats
	if err := json.Unmarshal(envelope.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalTransactions != 2 || stats.TotalAmount != 150 || stats.AvgAmount != 75 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if len(stats.TopCountriesByAmount) != 2 || stats.TopCountriesByAmount[0].Code != "US" {
		t.Errorf("unexpected ranking: %+v", stats.TopCountriesByAmount)
	}
}

func TestHandleGlobalStats_SelectionParams(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleGlobalStats, "/api/stats?from=2024-01-01&to=2024-01-04&countries=US,UK")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var stats models.GlobalStats
	if err := json.Unmarshal(envelope.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalTransactions != 1 || stats.TotalAmount != 100 {
		t.Errorf("country selection not applied: %+v", stats)
	}
}

func TestHandleGlobalStats_BadDates(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, _ := doRequest(t, h.HandleGlobalStats, "/api/stats?from=January&to=2024-01-04")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHandleGlobalStats_DefaultRange(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	// No from/to falls back to the trailing 30 days; the fixture data is
	// from 2024 so the totals are zero, but the request must succeed.
	w, _ := doRequest(t, h.HandleGlobalStats, "/api/stats")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHandleCountryStats(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	t.Run("no selection returns null data", func(t *testing.T) {
		w, envelope := doRequest(t, h.HandleCountryStats, "/api/stats/countries?from=2024-01-01&to=2024-01-04")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if string(envelope.Data) != "null" {
			t.Errorf("data = %s, want null sentinel", envelope.Data)
		}
	})

	t.Run("selection returns scoped totals", func(t *testing.T) {
		_, envelope := doRequest(t, h.HandleCountryStats, "/api/stats/countries?from=2024-01-01&to=2024-01-04&countries=CA")

		var stats models.ScopedStats
		if err := json.Unmarshal(envelope.Data, &stats); err != nil {
			t.Fatal(err)
		}
		if stats.TotalTransactions != 1 || stats.TotalAmount != 50 {
			t.Errorf("unexpected scoped stats: %+v", stats)
		}
	})
}

func TestHandleStoreStats(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	_, envelope := doRequest(t, h.HandleStoreStats, "/api/stats/stores?from=2024-01-01&to=2024-01-04&stores=s1,s2")

	var stats models.ScopedStats
	if err := json.Unmarshal(envelope.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats.TotalTransactions != 2 || stats.AvgAmount != 75 {
		t.Errorf("unexpected scoped stats: %+v", stats)
	}
}

func TestHandleRevenue(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleRevenue, "/api/revenue?from=2024-01-01&to=2024-01-04")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var points []models.SeriesPoint
	if err := json.Unmarshal(envelope.Data, &points); err != nil {
		t.Fatal(err)
	}
	if len(points) != 4 {
		t.Fatalf("got %d points, want 4", len(points))
	}
	if points[0].Revenue != 0 || points[1].Revenue != 100 || points[2].Revenue != 50 || points[3].Revenue != 0 {
		t.Errorf("unexpected series: %+v", points)
	}
}

func TestHandleComparison(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleComparison, "/api/comparison?dimension=countries&from=2024-01-01&to=2024-01-04")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var points []models.ComparisonPoint
	if err := json.Unmarshal(envelope.Data, &points); err != nil {
		t.Fatal(err)
	}
	// Two countries, four days each.
	if len(points) != 8 {
		t.Errorf("got %d points, want 8", len(points))
	}
}

func TestHandleComparison_BadDimension(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	for _, target := range []string{
		"/api/comparison?from=2024-01-01&to=2024-01-04",
		"/api/comparison?dimension=regions&from=2024-01-01&to=2024-01-04",
	} {
		w, _ := doRequest(t, h.HandleComparison, target)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, w.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleFilters(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleFilters, "/api/filters")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Header().Get("Cache-Control") == "" {
		t.Error("filters response should be cacheable")
	}

	var filters struct {
		Countries []models.Country `json:"countries"`
		Stores    []models.Store   `json:"stores"`
		Products  []models.Product `json:"products"`
	}
	if err := json.Unmarshal(envelope.Data, &filters); err != nil {
		t.Fatal(err)
	}
	if len(filters.Countries) != 2 || len(filters.Stores) != 2 || len(filters.Products) != 2 {
		t.Errorf("unexpected filter options: %+v", filters)
	}
}

func TestHandleHealth(t *testing.T) {
	h := NewAPIHandlers(createTestDataset(), testLogger())

	w, envelope := doRequest(t, h.HandleHealth, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var health map[string]string
	if err := json.Unmarshal(envelope.Data, &health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", health["status"])
	}
}

func TestSplitSelection(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"US", 1},
		{"US,CA,UK", 3},
		{" US , CA ", 2},
		{",,", 0},
	}

	for _, tt := range tests {
		if got := splitSelection(tt.raw); len(got) != tt.want {
			t.Errorf("splitSelection(%q) = %v, want %d items", tt.raw, got, tt.want)
		}
	}
}
