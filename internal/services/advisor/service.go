// Package advisor composes prompts and forwards them to the language model
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/models"
)

// NewsHeadlineCount is how many recent headlines feed the recommendation
// prompt.
const NewsHeadlineCount = 5

// Service implements AdvisorService. Each operation is a pure
// prompt-construction step followed by a single LLM call; nothing is
// persisted and nothing is retried.
type Service struct {
	llm    interfaces.LLMClient
	market interfaces.MarketDataClient
	logger *common.Logger
}

// NewService creates a new advisor service. llm may be nil when no
// provider key is configured — operations then fail with their domain
// error instead of panicking.
func NewService(llm interfaces.LLMClient, market interfaces.MarketDataClient, logger *common.Logger) *Service {
	return &Service{
		llm:    llm,
		market: market,
		logger: logger,
	}
}

// Advise asks for a buy/hold/sell call on a single position.
func (s *Service) Advise(ctx context.Context, req models.AdviceRequest) (string, error) {
	if req.Ticker == "" {
		return "", fmt.Errorf("%w: ticker is required", models.ErrValidation)
	}
	if s.llm == nil {
		return "", fmt.Errorf("%w: language model not configured", models.ErrAdviceGeneration)
	}

	prompt := buildAdvicePrompt(req)

	advice, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrAdviceGeneration, err)
	}

	return advice, nil
}

func buildAdvicePrompt(req models.AdviceRequest) string {
	return fmt.Sprintf(`A user owns %g shares of %s stock. They bought in at $%g and it is now trading at $%g.
As a financial assistant, should the user buy more, hold, or sell? Keep your answer to 1-2 sentences.`,
		req.Quantity, models.NormalizeTicker(req.Ticker), req.BuyPrice, req.CurrentPrice)
}

// Recommendations derives market-wide picks from recent general news.
func (s *Service) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	if s.llm == nil {
		return nil, fmt.Errorf("%w: language model not configured", models.ErrRecommendation)
	}

	news, err := s.market.GetGeneralNews(ctx, NewsHeadlineCount)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching headlines: %v", models.ErrRecommendation, err)
	}

	prompt := buildRecommendationPrompt(news)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrRecommendation, err)
	}

	recommendations, err := parseRecommendations(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Model returned unparseable recommendation JSON")
		return nil, fmt.Errorf("%w: %v", models.ErrRecommendation, err)
	}

	return recommendations, nil
}

func buildRecommendationPrompt(news []models.NewsItem) string {
	var sb strings.Builder
	sb.WriteString("Here are some recent financial news headlines:\n")
	for _, item := range news {
		sb.WriteString("- ")
		sb.WriteString(item.Headline)
		sb.WriteString("\n")
	}
	sb.WriteString(`
Based on these, suggest 3-5 publicly traded companies (tickers only, like AAPL or TSLA) that look promising to invest in short term. For each, explain in 1 sentence why it's a good pick.
Return the result as JSON with format: [{ "ticker": "AAPL", "reason": "..." }]`)
	return sb.String()
}

// parseRecommendations decodes the model's JSON array, tolerating markdown
// code fences around the payload.
func parseRecommendations(raw string) ([]models.Recommendation, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var recommendations []models.Recommendation
	if err := json.Unmarshal([]byte(raw), &recommendations); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return recommendations, nil
}

// Summarize asks for an overall assessment of an enriched portfolio.
// An empty portfolio is rejected before any outbound call is made.
func (s *Service) Summarize(ctx context.Context, positions []models.EnrichedPosition) (string, error) {
	if len(positions) == 0 {
		return "", fmt.Errorf("%w: no portfolio data provided", models.ErrValidation)
	}
	if s.llm == nil {
		return "", fmt.Errorf("%w: language model not configured", models.ErrSummaryGeneration)
	}

	prompt := buildSummaryPrompt(positions)

	summary, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrSummaryGeneration, err)
	}

	return summary, nil
}

func buildSummaryPrompt(positions []models.EnrichedPosition) string {
	lines := make([]string, len(positions))
	for i, p := range positions {
		lines[i] = fmt.Sprintf("%s: %g shares bought at $%.2f, now $%.2f (%.1f%%)",
			models.NormalizeTicker(p.Ticker), p.Quantity, p.BuyPrice, p.CurrentPrice, p.GainPct())
	}

	return fmt.Sprintf(`Here is a user's stock portfolio performance today:
%s

Give a short 2-3 sentence summary on how the portfolio performed overall, and recommend what they should do today (buy, sell, hold, or adjust).`,
		strings.Join(lines, "\n"))
}

// Ensure Service implements AdvisorService
var _ interfaces.AdvisorService = (*Service)(nil)
