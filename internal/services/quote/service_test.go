package quote

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/models"
)

// --- Mock market client ---

type mockMarketClient struct {
	mu     sync.Mutex
	calls  int
	quotes map[string]*models.Quote
	err    error
}

func newMockMarketClient() *mockMarketClient {
	return &mockMarketClient{quotes: make(map[string]*models.Quote)}
}

func (m *mockMarketClient) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	q, ok := m.quotes[symbol]
	if !ok {
		// Unknown symbols come back as an all-zero quote, not an error.
		return &models.Quote{}, nil
	}
	quote := *q
	return &quote, nil
}

func (m *mockMarketClient) SearchSymbols(_ context.Context, _ string) ([]models.SymbolMatch, error) {
	return nil, nil
}

func (m *mockMarketClient) GetGeneralNews(_ context.Context, _ int) ([]models.NewsItem, error) {
	return nil, nil
}

func (m *mockMarketClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// --- Test helpers ---

func testService(market *mockMarketClient) *Service {
	return NewService(market, common.NewSilentLogger())
}

// --- Tests ---

func TestGetQuoteFetchesAndCaches(t *testing.T) {
	market := newMockMarketClient()
	market.quotes["AAPL"] = &models.Quote{Price: 190.5, Change: 1.2, Percent: 0.63, PrevClose: 189.3}

	svc := testService(market)
	ctx := context.Background()

	first, err := svc.GetQuote(ctx, "AAPL")
	if err != nil {
		t.Fatalf("first GetQuote failed: %v", err)
	}
	if first.Price != 190.5 {
		t.Errorf("price = %v, want 190.5", first.Price)
	}

	second, err := svc.GetQuote(ctx, "AAPL")
	if err != nil {
		t.Fatalf("second GetQuote failed: %v", err)
	}
	if second.Price != first.Price {
		t.Errorf("cached price = %v, want %v", second.Price, first.Price)
	}
	if got := market.callCount(); got != 1 {
		t.Errorf("provider calls = %d, want 1 (second hit should come from cache)", got)
	}
}

func TestGetQuoteNormalizesTicker(t *testing.T) {
	market := newMockMarketClient()
	market.quotes["AAPL"] = &models.Quote{Price: 190.5}

	svc := testService(market)
	ctx := context.Background()

	if _, err := svc.GetQuote(ctx, "  aapl "); err != nil {
		t.Fatalf("GetQuote with lowercase ticker failed: %v", err)
	}
	if _, err := svc.GetQuote(ctx, "AAPL"); err != nil {
		t.Fatalf("GetQuote with uppercase ticker failed: %v", err)
	}
	if got := market.callCount(); got != 1 {
		t.Errorf("provider calls = %d, want 1 (aapl and AAPL share one cache entry)", got)
	}
}

func TestGetQuoteRefreshesAfterTTL(t *testing.T) {
	market := newMockMarketClient()
	market.quotes["MSFT"] = &models.Quote{Price: 420}

	svc := testService(market)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }

	ctx := context.Background()

	if _, err := svc.GetQuote(ctx, "MSFT"); err != nil {
		t.Fatalf("initial fetch failed: %v", err)
	}

	// One second inside the TTL still serves the cached entry.
	current = current.Add(CacheTTL - time.Second)
	if _, err := svc.GetQuote(ctx, "MSFT"); err != nil {
		t.Fatalf("fetch inside TTL failed: %v", err)
	}
	if got := market.callCount(); got != 1 {
		t.Errorf("provider calls = %d, want 1 inside TTL", got)
	}

	// At exactly the TTL the entry is stale.
	current = current.Add(time.Second)
	market.quotes["MSFT"] = &models.Quote{Price: 425}
	quote, err := svc.GetQuote(ctx, "MSFT")
	if err != nil {
		t.Fatalf("fetch at TTL failed: %v", err)
	}
	if got := market.callCount(); got != 2 {
		t.Errorf("provider calls = %d, want 2 after TTL expiry", got)
	}
	if quote.Price != 425 {
		t.Errorf("refreshed price = %v, want 425", quote.Price)
	}
}

func TestGetQuoteEmptyTicker(t *testing.T) {
	svc := testService(newMockMarketClient())

	_, err := svc.GetQuote(context.Background(), "   ")
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
}

func TestGetQuoteProviderError(t *testing.T) {
	market := newMockMarketClient()
	market.err = fmt.Errorf("connection refused")

	svc := testService(market)

	_, err := svc.GetQuote(context.Background(), "AAPL")
	if !errors.Is(err, models.ErrQuoteUnavailable) {
		t.Errorf("err = %v, want ErrQuoteUnavailable", err)
	}
}

func TestGetQuoteZeroPriceNotCached(t *testing.T) {
	market := newMockMarketClient()

	svc := testService(market)
	ctx := context.Background()

	// Unknown ticker: zero-price quote rejected, and not cached.
	if _, err := svc.GetQuote(ctx, "ZZZZZZ"); !errors.Is(err, models.ErrQuoteUnavailable) {
		t.Fatalf("err = %v, want ErrQuoteUnavailable", err)
	}
	if _, err := svc.GetQuote(ctx, "ZZZZZZ"); !errors.Is(err, models.ErrQuoteUnavailable) {
		t.Fatalf("second err = %v, want ErrQuoteUnavailable", err)
	}
	if got := market.callCount(); got != 2 {
		t.Errorf("provider calls = %d, want 2 (zero quotes must not be cached)", got)
	}
}

func TestGetQuoteReturnsCopy(t *testing.T) {
	market := newMockMarketClient()
	market.quotes["NVDA"] = &models.Quote{Price: 130}

	svc := testService(market)
	ctx := context.Background()

	first, err := svc.GetQuote(ctx, "NVDA")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	first.Price = -1

	second, err := svc.GetQuote(ctx, "NVDA")
	if err != nil {
		t.Fatalf("second GetQuote failed: %v", err)
	}
	if second.Price != 130 {
		t.Errorf("cached price = %v, want 130 (caller mutation must not reach the cache)", second.Price)
	}
}

func TestGetQuoteConcurrent(t *testing.T) {
	market := newMockMarketClient()
	market.quotes["TSLA"] = &models.Quote{Price: 250}

	svc := testService(market)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			quote, err := svc.GetQuote(ctx, "TSLA")
			if err != nil {
				t.Errorf("concurrent GetQuote failed: %v", err)
				return
			}
			if quote.Price != 250 {
				t.Errorf("concurrent price = %v, want 250", quote.Price)
			}
		}()
	}
	wg.Wait()
}
