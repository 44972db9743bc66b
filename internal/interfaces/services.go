// Package interfaces defines service contracts for folio
package interfaces

import (
	"context"

	"github.com/foliolab/folio/internal/models"
)

// PortfolioService manages stored positions and portfolio-level rendering.
type PortfolioService interface {
	// ListPositions returns all stored positions.
	ListPositions(ctx context.Context) ([]*models.Position, error)

	// CreatePosition validates, uppercases the ticker, stamps dateAdded,
	// persists and returns the stored position.
	CreatePosition(ctx context.Context, ticker string, quantity, buyPrice float64) (*models.Position, error)

	// DeletePosition removes a position by identity; unknown identities
	// succeed with no effect.
	DeletePosition(ctx context.Context, id string) error

	// RenderChart renders a PNG gain/loss chart for an enriched portfolio.
	RenderChart(positions []models.EnrichedPosition) ([]byte, error)
}

// QuoteService returns recent quotes, serving from a bounded-age cache.
type QuoteService interface {
	// GetQuote returns a quote no older than the cache TTL for the ticker.
	GetQuote(ctx context.Context, ticker string) (*models.Quote, error)
}

// SuggestService ranks ticker suggestions for a partial query.
type SuggestService interface {
	// Suggest returns at most 8 well-formed ticker suggestions ordered by
	// match quality.
	Suggest(ctx context.Context, query string) ([]models.Suggestion, error)
}

// AdvisorService composes prompts and forwards them to the language model.
type AdvisorService interface {
	// Advise returns a short buy/hold/sell recommendation for one position.
	Advise(ctx context.Context, req models.AdviceRequest) (string, error)

	// Recommendations returns market-wide picks derived from recent
	// headlines, parsed from the model's JSON response.
	Recommendations(ctx context.Context) ([]models.Recommendation, error)

	// Summarize returns a short overall assessment of an enriched
	// portfolio.
	Summarize(ctx context.Context, positions []models.EnrichedPosition) (string, error)
}
