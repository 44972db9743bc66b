// Package interfaces defines service contracts for folio
package interfaces

import (
	"context"

	"github.com/foliolab/folio/internal/models"
)

// MarketDataClient provides access to the market-data provider's HTTP API.
type MarketDataClient interface {
	// GetQuote retrieves the current quote for a ticker symbol.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// SearchSymbols retrieves raw symbol-search results for a query.
	SearchSymbols(ctx context.Context, query string) ([]models.SymbolMatch, error)

	// GetGeneralNews retrieves up to limit general market news headlines.
	GetGeneralNews(ctx context.Context, limit int) ([]models.NewsItem, error)
}

// LLMClient provides access to a language-model provider's chat-style
// completion endpoint. Complete sends a single user message and returns the
// raw response text.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)

	Close() error
}
