package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"insights-dashboard/internal/config"
	"insights-dashboard/internal/models"
	"insights-dashboard/internal/server"
	"insights-dashboard/internal/services"
)

func newTestDataset() *services.Dataset {
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

func newTestServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	data := newTestDataset()
	templateHandlers := &server.TemplateHandlers{Dashboard: newDashboardHandler(data)}
	return server.NewServer(data, logger, templateHandlers)
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		path           string
		expectedStatus int
	}{
		{"/", http.StatusOK},
		{"/health", http.StatusOK},
		{"/admin/stats", http.StatusOK},
		{"/api/stats?from=2024-01-01&to=2024-01-04", http.StatusOK},
		{"/api/stats/countries?from=2024-01-01&to=2024-01-04&countries=US", http.StatusOK},
		{"/api/stats/stores?from=2024-01-01&to=2024-01-04&stores=s1", http.StatusOK},
		{"/api/revenue?from=2024-01-01&to=2024-01-04", http.StatusOK},
		{"/api/comparison?dimension=products&from=2024-01-01&to=2024-01-04", http.StatusOK},
		{"/api/comparison?from=2024-01-01&to=2024-01-04", http.StatusBadRequest},
		{"/api/filters", http.StatusOK},
		{"/sse/dashboard?from=2024-01-01&to=2024-01-04", http.StatusOK},
		{"/sse/comparison?dimension=stores&from=2024-01-01&to=2024-01-04", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			srv.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("GET %s = %d, want %d", tt.path, w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestDashboardHandler(t *testing.T) {
	handler := newDashboardHandler(newTestDataset())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	for _, want := range []string{"Insights Dashboard", "United States", "Mobile App", "Premium Subscription"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard page missing %q", want)
		}
	}
}

func TestEndToEnd_StatsFlow(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/stats?from=2024-01-01&to=2024-01-04", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var envelope struct {
		Data    models.GlobalStats `json:"data"`
		Success bool               `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if envelope.Data.TotalTransactions != 2 || envelope.Data.TotalAmount != 150 || envelope.Data.AvgAmount != 75 {
		t.Errorf("unexpected stats: %+v", envelope.Data)
	}
}

func TestLoadTransactions_GeneratorFallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	transactions, err := loadTransactions(ctx, config.DatasetConfig{Seed: 1, Count: 100}, logger)
	if err != nil {
		t.Fatalf("loadTransactions failed: %v", err)
	}
	if len(transactions) != 100 {
		t.Errorf("got %d transactions, want 100", len(transactions))
	}
}
