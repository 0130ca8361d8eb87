package server

import (
	"log/slog"
	"net/http"

	"insights-dashboard/internal/handlers"
	"insights-dashboard/internal/services"
)

type Server struct {
	data        *services.Dataset
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(data *services.Dataset, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		data:        data,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(data, logger),
		sseHandlers: handlers.NewSSEHandlers(data, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard shell
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/stats", s.apiHandlers.HandleGlobalStats)
	s.mux.HandleFunc("GET /api/stats/countries", s.apiHandlers.HandleCountryStats)
	s.mux.HandleFunc("GET /api/stats/stores", s.apiHandlers.HandleStoreStats)
	s.mux.HandleFunc("GET /api/revenue", s.apiHandlers.HandleRevenue)
	s.mux.HandleFunc("GET /api/comparison", s.apiHandlers.HandleComparison)
	s.mux.HandleFunc("GET /api/filters", s.apiHandlers.HandleFilters)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/dashboard", s.sseHandlers.HandleDashboard)
	s.mux.HandleFunc("GET /sse/comparison", s.sseHandlers.HandleComparison)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
