package server

import "net/http"

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/ping", s.handlePing)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Portfolio
	mux.HandleFunc("/api/portfolio/chart", s.handlePortfolioChart)
	mux.HandleFunc("/api/portfolio/", s.routePortfolio) // handles /{id}
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)

	// Market data
	mux.HandleFunc("/api/price/", s.handlePrice)
	mux.HandleFunc("/api/suggest/", s.handleSuggest)

	// AI composers
	mux.HandleFunc("/api/ai/advise", s.handleAdvise)
	mux.HandleFunc("/api/ai/recommendations", s.handleRecommendations)
	mux.HandleFunc("/api/ai/summary", s.handleSummary)
}

// routePortfolio dispatches /api/portfolio/{id} to the delete handler.
func (s *Server) routePortfolio(w http.ResponseWriter, r *http.Request) {
	id := PathParam(r, "/api/portfolio/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "position id is required in path")
		return
	}
	s.handlePositionDelete(w, r, id)
}
