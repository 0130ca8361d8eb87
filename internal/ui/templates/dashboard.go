// Package templates renders the dashboard shell. The page carries the
// filter controls and empty containers; a datastar request to
// /sse/dashboard fills them in and re-fills them on every filter change.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"insights-dashboard/internal/models"
)

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Insights Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#f7f8fa;color:#172b4d}
header{background:#fff;border-bottom:1px solid #e2e4e9;padding:12px 24px}
main{max-width:1100px;margin:0 auto;padding:24px}
.filter-bar{display:flex;flex-wrap:wrap;gap:16px;background:#fff;border:1px solid #e2e4e9;border-radius:8px;padding:16px;margin-bottom:24px}
.stat-grid{display:grid;grid-template-columns:repeat(3,1fr);gap:16px;margin-bottom:24px}
.stat-card{background:#fff;border:1px solid #e2e4e9;border-radius:8px;padding:16px;display:flex;flex-direction:column}
.stat-title{font-size:12px;color:#6b778c}
.stat-value{font-size:24px;font-weight:600}
.stat-subtext{font-size:12px;color:#6b778c}
.scoped-stats,.top-list,.chart{background:#fff;border:1px solid #e2e4e9;border-radius:8px;padding:16px;margin-bottom:24px}
.muted{color:#6b778c}
</style>
</head>
<body data-signals='{"from":"{{.From}}","to":"{{.To}}","countries":[],"stores":[],"products":[],"dimension":"products","revenueData":[],"comparisonData":[]}'
      data-on-load="@get('/sse/dashboard?from='+$from+'&to='+$to)">
<header><h1>Insights Dashboard</h1></header>
<main>
<section class="filter-bar">
<label>From <input type="date" data-bind-from data-on-change="@get('/sse/dashboard?from='+$from+'&to='+$to+'&countries='+$countries+'&stores='+$stores+'&products='+$products)"></label>
<label>To <input type="date" data-bind-to data-on-change="@get('/sse/dashboard?from='+$from+'&to='+$to+'&countries='+$countries+'&stores='+$stores+'&products='+$products)"></label>
<label>Countries
<select multiple data-bind-countries data-on-change="@get('/sse/dashboard?from='+$from+'&to='+$to+'&countries='+$countries+'&stores='+$stores+'&products='+$products)">
{{range .Countries}}<option value="{{.Code}}">{{.Name}}</option>{{end}}
</select></label>
<label>Stores
<select multiple data-bind-stores data-on-change="@get('/sse/dashboard?from='+$from+'&to='+$to+'&countries='+$countries+'&stores='+$stores+'&products='+$products)">
{{range .Stores}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
</select></label>
<label>Products
<select multiple data-bind-products data-on-change="@get('/sse/dashboard?from='+$from+'&to='+$to+'&countries='+$countries+'&stores='+$stores+'&products='+$products)">
{{range .Products}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
</select></label>
</section>
<div id="stat-cards" class="stat-grid"></div>
<div id="country-stats" class="scoped-stats"></div>
<div id="store-stats" class="scoped-stats"></div>
<section class="chart" data-attr-data-series="JSON.stringify($revenueData)">
<h2>Revenue Over Time</h2>
<div id="revenue-chart"></div>
</section>
<div id="top-countries"></div>
<section class="chart" data-attr-data-series="JSON.stringify($comparisonData)">
<h2>Comparison</h2>
<nav class="tabs">
<button data-on-click="$dimension='products';@get('/sse/comparison?dimension='+$dimension+'&from='+$from+'&to='+$to)">Products</button>
<button data-on-click="$dimension='countries';@get('/sse/comparison?dimension='+$dimension+'&from='+$from+'&to='+$to)">Countries</button>
<button data-on-click="$dimension='stores';@get('/sse/comparison?dimension='+$dimension+'&from='+$from+'&to='+$to)">Stores</button>
</nav>
<div id="comparison-chart"></div>
</section>
</main>
</body>
</html>`))

type dashboardView struct {
	From      string
	To        string
	Countries []models.Country
	Stores    []models.Store
	Products  []models.Product
}

// Dashboard returns the page component, pre-populated with the filter
// option lists and the default date range.
func Dashboard(from, to string, countries []models.Country, stores []models.Store, products []models.Product) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return dashboardTemplate.Execute(w, dashboardView{
			From:      from,
			To:        to,
			Countries: countries,
			Stores:    stores,
			Products:  products,
		})
	})
}
