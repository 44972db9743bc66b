// Package quote provides a TTL-cached quote service over the market-data provider
package quote

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/models"
)

// CacheTTL is the maximum age at which a cached quote is still served
// without a provider call.
const CacheTTL = 60 * time.Second

type cacheEntry struct {
	quote     models.Quote
	timestamp time.Time
}

// Service implements QuoteService with per-ticker time-boxed memoization.
// Entries are keyed by uppercase ticker and never evicted; a stale entry is
// simply overwritten on the next fetch. Concurrent refreshes of the same
// ticker may each call the provider — last write wins.
type Service struct {
	market interfaces.MarketDataClient
	logger *common.Logger
	now    func() time.Time // injectable clock for testing

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

// NewService creates a new quote service.
func NewService(market interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		market: market,
		logger: logger,
		now:    time.Now,
		cache:  make(map[string]cacheEntry),
	}
}

// GetQuote returns the cached quote for the ticker when it is younger than
// CacheTTL, otherwise fetches a fresh one from the provider and caches it.
func (s *Service) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	ticker = models.NormalizeTicker(ticker)
	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", models.ErrValidation)
	}

	if quote, ok := s.lookup(ticker); ok {
		return quote, nil
	}

	fetched, err := s.market.GetQuote(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrQuoteUnavailable, ticker, err)
	}

	// Finnhub reports unknown tickers as an all-zero quote rather than an
	// error; a zero current price means no usable data.
	if fetched.Price == 0 {
		return nil, fmt.Errorf("%w: no valid current price for %s", models.ErrQuoteUnavailable, ticker)
	}

	s.store(ticker, *fetched)

	s.logger.Debug().
		Str("ticker", ticker).
		Float64("price", fetched.Price).
		Msg("Quote cache refreshed")

	return fetched, nil
}

// lookup returns a copy of the cached quote if the entry is still fresh.
func (s *Service) lookup(ticker string) (*models.Quote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[ticker]
	if !ok || s.now().Sub(entry.timestamp) >= CacheTTL {
		return nil, false
	}

	quote := entry.quote
	return &quote, true
}

// store overwrites the cache entry for the ticker with the current time.
func (s *Service) store(ticker string, quote models.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[ticker] = cacheEntry{
		quote:     quote,
		timestamp: s.now(),
	}
}

// Ensure Service implements QuoteService
var _ interfaces.QuoteService = (*Service)(nil)
