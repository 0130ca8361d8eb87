package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"insights-dashboard/internal/config"
	"insights-dashboard/internal/middleware"
	"insights-dashboard/internal/models"
	"insights-dashboard/internal/observability"
	"insights-dashboard/internal/server"
	"insights-dashboard/internal/services"
	"insights-dashboard/internal/ui/templates"
)

const (
	renderTimeout  = 10 * time.Second
	csvLoadTimeout = 30 * time.Second
	cacheMaxAge    = "public, max-age=300"
)

func newDashboardHandler(data *services.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		from, to := services.DefaultRange(time.Now())

		w.Header().Set("Cache-Control", cacheMaxAge)
		page := templates.Dashboard(from, to, data.Countries(), data.Stores(), data.Products())
		if err := page.Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func loadTransactions(ctx context.Context, cfg config.DatasetConfig, logger *slog.Logger) ([]models.Transaction, error) {
	if cfg.CSVFile != "" {
		return services.LoadCSV(ctx, cfg.CSVFile, logger)
	}

	logger.Info("no CSV configured, generating demo dataset",
		"seed", cfg.Seed,
		"count", cfg.Count,
	)
	return services.Generate(cfg.Seed, cfg.Count, time.Now()), nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	ctx, cancel := context.WithTimeout(context.Background(), csvLoadTimeout)
	defer cancel()

	transactions, err := loadTransactions(ctx, cfg.Dataset, logger)
	if err != nil {
		logger.Error("failed to load transactions", "error", err)
		os.Exit(1)
	}

	data := services.NewDataset(transactions)
	logger.Info("dataset ready",
		"records", data.Len(),
		"countries", len(data.Countries()),
		"stores", len(data.Stores()),
		"products", len(data.Products()),
	)

	templateHandlers := &server.TemplateHandlers{
		Dashboard: newDashboardHandler(data),
	}

	srv := server.NewServer(data, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
		middleware.Compression(),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
