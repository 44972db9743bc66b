package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/models"
)

// handlePing is a basic health probe.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"message": "Server is working!"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

// handlePortfolio serves the collection: GET lists positions, POST creates one.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		positions, err := s.app.PortfolioService.ListPositions(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to list positions")
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, positions)
	case http.MethodPost:
		var req struct {
			Ticker   string  `json:"ticker"`
			Quantity float64 `json:"quantity"`
			BuyPrice float64 `json:"buyPrice"`
		}
		if !DecodeJSON(w, r, &req) {
			return
		}
		position, err := s.app.PortfolioService.CreatePosition(r.Context(), req.Ticker, req.Quantity, req.BuyPrice)
		if err != nil {
			WriteDomainError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, position)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handlePositionDelete(w http.ResponseWriter, r *http.Request, id string) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	if err := s.app.PortfolioService.DeletePosition(r.Context(), id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("Failed to delete position")
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handlePortfolioChart renders the posted holdings as a PNG bar chart.
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Portfolio []models.EnrichedPosition `json:"portfolio"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	png, err := s.app.PortfolioService.RenderChart(req.Portfolio)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	ticker := PathParam(r, "/api/price/")
	quote, err := s.app.QuoteService.GetQuote(r.Context(), ticker)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, quote)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	query := PathParam(r, "/api/suggest/")
	suggestions, err := s.app.SuggestService.Suggest(r.Context(), query)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, suggestions)
}

func (s *Server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req models.AdviceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	advice, err := s.app.AdvisorService.Advise(r.Context(), req)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"advice": advice})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	recommendations, err := s.app.AdvisorService.Recommendations(r.Context())
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, recommendations)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req struct {
		Portfolio []models.EnrichedPosition `json:"portfolio"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	summary, err := s.app.AdvisorService.Summarize(r.Context(), req.Portfolio)
	if err != nil {
		WriteDomainError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"summary": strings.TrimSpace(summary)})
}
