package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"insights-dashboard/internal/models"
	"insights-dashboard/internal/money"
	"insights-dashboard/internal/services"
)

var statCardsTemplate = template.Must(template.New("statCards").Parse(`
<div id="stat-cards" class="stat-grid">
<div class="stat-card primary"><span class="stat-title">Total Transactions</span><span class="stat-value">{{.Transactions}}</span></div>
<div class="stat-card success"><span class="stat-title">Total Amount</span><span class="stat-value">{{.Total}}</span><span class="stat-subtext">{{.TotalTier}}</span></div>
<div class="stat-card"><span class="stat-title">Average Transaction</span><span class="stat-value">{{.Average}}</span><span class="stat-subtext">{{.AverageTier}}</span></div>
</div>`))

var topCountriesTemplate = template.Must(template.New("topCountries").Parse(`
<div id="top-countries">
<div class="top-list">
<h3>Top Countries by Amount</h3>
<ol>{{range .ByAmount}}<li><span>{{.Name}}</span><strong>{{.Display}}</strong></li>{{end}}</ol>
</div>
<div class="top-list">
<h3>Top Countries by Transactions</h3>
<ol>{{range .ByCount}}<li><span>{{.Name}}</span><strong>{{.Display}}</strong></li>{{end}}</ol>
</div>
</div>`))

var scopedStatsTemplate = template.Must(template.New("scopedStats").Parse(`
<div id="{{.ID}}" class="scoped-stats">
<h3>{{.Title}}</h3>
{{if .HasScope}}<dl>
<dt>Transactions</dt><dd>{{.Transactions}}</dd>
<dt>Total</dt><dd>{{.Total}}</dd>
<dt>Average</dt><dd>{{.Average}}</dd>
</dl>{{else}}<p class="muted">Select filters to view stats</p>{{end}}
</div>`))

type SSEHandlers struct {
	data   *services.Dataset
	logger *slog.Logger
}

func NewSSEHandlers(data *services.Dataset, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		data:   data,
		logger: logger,
	}
}

type statCardsView struct {
	Transactions int
	Total        string
	TotalTier    string
	Average      string
	AverageTier  string
}

type rankRow struct {
	Name    string
	Display string
}

type topCountriesView struct {
	ByAmount []rankRow
	ByCount  []rankRow
}

type scopedStatsView struct {
	ID           string
	Title        string
	HasScope     bool
	Transactions int
	Total        string
	Average      string
}

func (h *SSEHandlers) renderStatCards(stats models.GlobalStats) (string, error) {
	var buf strings.Builder
	err := statCardsTemplate.Execute(&buf, statCardsView{
		Transactions: stats.TotalTransactions,
		Total:        money.FormatUSD(stats.TotalAmount),
		TotalTier:    money.TierText(stats.TotalAmount),
		Average:      money.FormatUSD(stats.AvgAmount),
		AverageTier:  money.TierText(stats.AvgAmount),
	})
	return buf.String(), err
}

func (h *SSEHandlers) renderTopCountries(stats models.GlobalStats) (string, error) {
	view := topCountriesView{}
	for _, c := range stats.TopCountriesByAmount {
		view.ByAmount = append(view.ByAmount, rankRow{Name: c.Name, Display: money.FormatUSD(c.Value)})
	}
	for _, c := range stats.TopCountriesByTransactions {
		view.ByCount = append(view.ByCount, rankRow{Name: c.Name, Display: strconv.Itoa(int(c.Value))})
	}

	var buf strings.Builder
	err := topCountriesTemplate.Execute(&buf, view)
	return buf.String(), err
}

func (h *SSEHandlers) renderScopedStats(id, title string, stats *models.ScopedStats) (string, error) {
	view := scopedStatsView{ID: id, Title: title}
	if stats != nil {
		view.HasScope = true
		view.Transactions = stats.TotalTransactions
		view.Total = money.FormatUSD(stats.TotalAmount)
		view.Average = money.FormatUSD(stats.AvgAmount)
	}

	var buf strings.Builder
	err := scopedStatsTemplate.Execute(&buf, view)
	return buf.String(), err
}

// HandleDashboard recomputes everything for the current filters and
// patches the page in one SSE response: stat cards, scoped stats and the
// top-country lists as HTML fragments, plus the chart series as signals.
func (h *SSEHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		http.Error(w, appErr.Message, appErr.StatusCode)
		return
	}

	sse := datastar.NewSSE(w, r)

	global := h.data.GlobalStats(q)

	cards, err := h.renderStatCards(global)
	if err != nil {
		h.logger.Error("render stat cards", "error", err)
		return
	}
	sse.PatchElements(cards)

	top, err := h.renderTopCountries(global)
	if err != nil {
		h.logger.Error("render top countries", "error", err)
		return
	}
	sse.PatchElements(top)

	countryScoped, err := h.renderScopedStats("country-stats", "Selected Countries", h.data.CountryStats(q))
	if err != nil {
		h.logger.Error("render country stats", "error", err)
		return
	}
	sse.PatchElements(countryScoped)

	storeScoped, err := h.renderScopedStats("store-stats", "Selected Stores", h.data.StoreStats(q))
	if err != nil {
		h.logger.Error("render store stats", "error", err)
		return
	}
	sse.PatchElements(storeScoped)

	signals, err := json.Marshal(map[string]any{
		"revenueData": h.data.RevenueByDay(q),
	})
	if err != nil {
		h.logger.Error("marshal revenue data", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// HandleComparison feeds the multi-line comparison chart for the selected
// dimension tab.
func (h *SSEHandlers) HandleComparison(w http.ResponseWriter, r *http.Request) {
	q, appErr := parseQuery(r)
	if appErr != nil {
		http.Error(w, appErr.Message, appErr.StatusCode)
		return
	}

	dim, err := services.ParseDimension(r.URL.Query().Get("dimension"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)

	signals, err := json.Marshal(map[string]any{
		"comparisonData": h.data.Comparison(dim, q),
	})
	if err != nil {
		h.logger.Error("marshal comparison data", "error", err)
		return
	}
	sse.PatchSignals(signals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
