package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"insights-dashboard/internal/errors"
	"insights-dashboard/internal/observability"
	"insights-dashboard/internal/services"
)

type APIHandlers struct {
	data   *services.Dataset
	logger *slog.Logger
}

func NewAPIHandlers(data *services.Dataset, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		data:   data,
		logger: logger,
	}
}

// parseQuery builds the aggregation query from URL parameters. Missing
// bounds fall back to the trailing 30-day window; present but malformed
// bounds are a client error.
func parseQuery(r *http.Request) (services.Query, *errors.AppError) {
	params := r.URL.Query()

	from := params.Get("from")
	to := params.Get("to")
	if from == "" && to == "" {
		from, to = services.DefaultRange(time.Now())
	}

	for _, bound := range []string{from, to} {
		if _, err := time.Parse("2006-01-02", bound); err != nil {
			return services.Query{}, errors.BadRequestWrap(err, "dates must be yyyy-MM-dd")
		}
	}

	return services.Query{
		From:      from,
		To:        to,
		Countries: splitSelection(params.Get("countries")),
		Stores:    splitSelection(params.Get("stores")),
		Products:  splitSelection(params.Get("products")),
	}, nil
}

// splitSelection parses a comma-separated identifier list; empty input is
// the empty (unrestricted) selection.
func splitSelection(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *APIHandlers) HandleGlobalStats(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccess(w, h.data.GlobalStats(q))
}

func (h *APIHandlers) HandleCountryStats(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, observability.GetRequestID(r.Context()))
		return
	}

	// nil when nothing is selected; the client treats null as "no scope".
	errors.WriteSuccess(w, h.data.CountryStats(q))
}

func (h *APIHandlers) HandleStoreStats(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccess(w, h.data.StoreStats(q))
}

func (h *APIHandlers) HandleRevenue(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccess(w, h.data.RevenueByDay(q))
}

func (h *APIHandlers) HandleComparison(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		errors.WriteError(w, h.logger, appErr, observability.GetRequestID(r.Context()))
		return
	}

	dim, err := services.ParseDimension(r.URL.Query().Get("dimension"))
	if err != nil {
		errors.WriteError(w, h.logger, errors.BadRequestWrap(err, "dimension must be products, countries or stores"),
			observability.GetRequestID(r.Context()))
		return
	}

	errors.WriteSuccess(w, h.data.Comparison(dim, q))
}

// HandleFilters returns the selectable identifiers per dimension for the
// filter controls. Snapshot-stable, so cacheable.
func (h *APIHandlers) HandleFilters(w http.ResponseWriter, r *http.Request) {
	headers := map[string]string{
		"Cache-Control": "public, max-age=300",
	}

	errors.WriteSuccessWithHeaders(w, map[string]any{
		"countries": h.data.Countries(),
		"stores":    h.data.Stores(),
		"products":  h.data.Products(),
	}, headers)
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.data.Stats())
}
