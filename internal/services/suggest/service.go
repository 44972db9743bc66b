// Package suggest ranks ticker suggestions from the provider's symbol search
package suggest

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/models"
)

// MaxSuggestions caps the ranked output length.
const MaxSuggestions = 8

// symbolPattern admits plain 1-6 letter US-style tickers. Composite and
// non-equity symbols (dots, digits, warrants past 6 chars) are dropped on
// purpose to keep the suggestion list clean.
var symbolPattern = regexp.MustCompile(`^[A-Z]{1,6}$`)

// Service implements SuggestService.
type Service struct {
	market interfaces.MarketDataClient
	logger *common.Logger
}

// NewService creates a new suggestion service.
func NewService(market interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		market: market,
		logger: logger,
	}
}

// Suggest uppercases the query, filters provider search results to
// well-formed symbols, scores them by match quality and returns the top
// MaxSuggestions ordered by score descending then symbol ascending.
func (s *Service) Suggest(ctx context.Context, query string) ([]models.Suggestion, error) {
	query = models.NormalizeTicker(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", models.ErrValidation)
	}

	matches, err := s.market.SearchSymbols(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSuggestionSource, err)
	}

	suggestions := rank(query, matches)

	s.logger.Debug().
		Str("query", query).
		Int("raw", len(matches)).
		Int("ranked", len(suggestions)).
		Msg("Symbol suggestions ranked")

	return suggestions, nil
}

// rank filters, scores, sorts and truncates raw search results.
func rank(query string, matches []models.SymbolMatch) []models.Suggestion {
	suggestions := make([]models.Suggestion, 0, len(matches))
	for _, m := range matches {
		if m.Symbol == "" || m.Description == "" || !symbolPattern.MatchString(m.Symbol) {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			Symbol: m.Symbol,
			Name:   m.Description,
			Score:  score(query, m.Symbol),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Symbol < suggestions[j].Symbol
	})

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// score prioritizes exact matches, then prefix matches.
func score(query, symbol string) int {
	switch {
	case symbol == query:
		return 2
	case strings.HasPrefix(symbol, query):
		return 1
	default:
		return 0
	}
}

// Ensure Service implements SuggestService
var _ interfaces.SuggestService = (*Service)(nil)
