package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/models"
)

// --- Mock LLM client ---

type mockLLMClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (m *mockLLMClient) Complete(_ context.Context, prompt string) (string, error) {
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMClient) Close() error { return nil }

// --- Mock market client ---

type mockMarketClient struct {
	news []models.NewsItem
	err  error
}

func (m *mockMarketClient) GetQuote(_ context.Context, _ string) (*models.Quote, error) {
	return nil, nil
}

func (m *mockMarketClient) SearchSymbols(_ context.Context, _ string) ([]models.SymbolMatch, error) {
	return nil, nil
}

func (m *mockMarketClient) GetGeneralNews(_ context.Context, limit int) ([]models.NewsItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit < len(m.news) {
		return m.news[:limit], nil
	}
	return m.news, nil
}

func testService(llm *mockLLMClient, market *mockMarketClient) *Service {
	return NewService(llm, market, common.NewSilentLogger())
}

// --- Advise ---

func TestAdvisePromptContents(t *testing.T) {
	llm := &mockLLMClient{response: "Hold. The position is up modestly."}
	svc := testService(llm, &mockMarketClient{})

	advice, err := svc.Advise(context.Background(), models.AdviceRequest{
		Ticker:       "aapl",
		Quantity:     10,
		BuyPrice:     150,
		CurrentPrice: 190.5,
	})
	if err != nil {
		t.Fatalf("Advise failed: %v", err)
	}
	if advice != "Hold. The position is up modestly." {
		t.Errorf("advice = %q", advice)
	}

	if len(llm.prompts) != 1 {
		t.Fatalf("LLM calls = %d, want 1", len(llm.prompts))
	}
	prompt := llm.prompts[0]
	for _, want := range []string{"10 shares", "AAPL", "$150", "$190.5", "buy more, hold, or sell"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAdviseMissingTicker(t *testing.T) {
	llm := &mockLLMClient{}
	svc := testService(llm, &mockMarketClient{})

	_, err := svc.Advise(context.Background(), models.AdviceRequest{Quantity: 5})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if llm.calls != 0 {
		t.Errorf("LLM calls = %d, want 0", llm.calls)
	}
}

func TestAdviseLLMError(t *testing.T) {
	llm := &mockLLMClient{err: fmt.Errorf("model overloaded")}
	svc := testService(llm, &mockMarketClient{})

	_, err := svc.Advise(context.Background(), models.AdviceRequest{Ticker: "AAPL"})
	if !errors.Is(err, models.ErrAdviceGeneration) {
		t.Errorf("err = %v, want ErrAdviceGeneration", err)
	}
}

func TestAdviseWithoutLLMConfigured(t *testing.T) {
	svc := NewService(nil, &mockMarketClient{}, common.NewSilentLogger())

	_, err := svc.Advise(context.Background(), models.AdviceRequest{Ticker: "AAPL"})
	if !errors.Is(err, models.ErrAdviceGeneration) {
		t.Errorf("err = %v, want ErrAdviceGeneration", err)
	}
}

// --- Recommendations ---

func TestRecommendations(t *testing.T) {
	llm := &mockLLMClient{response: `[{"ticker":"AAPL","reason":"Strong earnings"},{"ticker":"TSLA","reason":"Delivery beat"}]`}
	market := &mockMarketClient{news: []models.NewsItem{
		{Headline: "Apple posts record quarter"},
		{Headline: "Tesla deliveries surge"},
	}}
	svc := testService(llm, market)

	got, err := svc.Recommendations(context.Background())
	if err != nil {
		t.Fatalf("Recommendations failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(got))
	}
	if got[0].Ticker != "AAPL" || got[0].Reason != "Strong earnings" {
		t.Errorf("first recommendation = %+v", got[0])
	}

	prompt := llm.prompts[0]
	for _, want := range []string{"- Apple posts record quarter", "- Tesla deliveries surge", "3-5 publicly traded companies", `[{ "ticker": "AAPL", "reason": "..." }]`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestRecommendationsStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"json fence", "```json\n[{\"ticker\":\"NVDA\",\"reason\":\"AI demand\"}]\n```"},
		{"bare fence", "```\n[{\"ticker\":\"NVDA\",\"reason\":\"AI demand\"}]\n```"},
		{"no fence", `[{"ticker":"NVDA","reason":"AI demand"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLMClient{response: tt.response}
			svc := testService(llm, &mockMarketClient{})

			got, err := svc.Recommendations(context.Background())
			if err != nil {
				t.Fatalf("Recommendations failed: %v", err)
			}
			if len(got) != 1 || got[0].Ticker != "NVDA" {
				t.Errorf("got %+v, want single NVDA pick", got)
			}
		})
	}
}

func TestRecommendationsUnparseableResponse(t *testing.T) {
	llm := &mockLLMClient{response: "I would suggest looking at technology stocks."}
	svc := testService(llm, &mockMarketClient{})

	_, err := svc.Recommendations(context.Background())
	if !errors.Is(err, models.ErrRecommendation) {
		t.Errorf("err = %v, want ErrRecommendation", err)
	}
}

func TestRecommendationsNewsError(t *testing.T) {
	llm := &mockLLMClient{}
	market := &mockMarketClient{err: fmt.Errorf("news unavailable")}
	svc := testService(llm, market)

	_, err := svc.Recommendations(context.Background())
	if !errors.Is(err, models.ErrRecommendation) {
		t.Errorf("err = %v, want ErrRecommendation", err)
	}
	if llm.calls != 0 {
		t.Errorf("LLM calls = %d, want 0 when headlines fail", llm.calls)
	}
}

// --- Summarize ---

func TestSummarizePromptContents(t *testing.T) {
	llm := &mockLLMClient{response: "Portfolio is up today. Consider holding."}
	svc := testService(llm, &mockMarketClient{})

	positions := []models.EnrichedPosition{
		{Ticker: "AAPL", Quantity: 10, BuyPrice: 150, CurrentPrice: 165},
		{Ticker: "TSLA", Quantity: 2, BuyPrice: 300, CurrentPrice: 250},
	}

	summary, err := svc.Summarize(context.Background(), positions)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if summary == "" {
		t.Error("summary is empty")
	}

	prompt := llm.prompts[0]
	for _, want := range []string{
		"AAPL: 10 shares bought at $150.00, now $165.00 (10.0%)",
		"TSLA: 2 shares bought at $300.00, now $250.00 (-16.7%)",
		"2-3 sentence summary",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSummarizeEmptyPortfolio(t *testing.T) {
	llm := &mockLLMClient{}
	svc := testService(llm, &mockMarketClient{})

	_, err := svc.Summarize(context.Background(), nil)
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}
	if llm.calls != 0 {
		t.Errorf("LLM calls = %d, want 0 for empty portfolio", llm.calls)
	}
}

func TestSummarizeLLMError(t *testing.T) {
	llm := &mockLLMClient{err: fmt.Errorf("timeout")}
	svc := testService(llm, &mockMarketClient{})

	_, err := svc.Summarize(context.Background(), []models.EnrichedPosition{
		{Ticker: "AAPL", Quantity: 1, BuyPrice: 100, CurrentPrice: 110},
	})
	if !errors.Is(err, models.ErrSummaryGeneration) {
		t.Errorf("err = %v, want ErrSummaryGeneration", err)
	}
}
