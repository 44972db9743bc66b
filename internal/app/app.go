// Package app wires folio's configuration, storage, clients and services.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/foliolab/folio/internal/clients/finnhub"
	"github.com/foliolab/folio/internal/clients/gemini"
	"github.com/foliolab/folio/internal/clients/openai"
	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/services/advisor"
	"github.com/foliolab/folio/internal/services/portfolio"
	"github.com/foliolab/folio/internal/services/quote"
	"github.com/foliolab/folio/internal/services/suggest"
	"github.com/foliolab/folio/internal/storage/surrealdb"
)

// App holds all initialized services and clients. It is the shared core
// behind cmd/folio-server.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	MarketClient     interfaces.MarketDataClient
	LLMClient        interfaces.LLMClient
	PortfolioService interfaces.PortfolioService
	QuoteService     interfaces.QuoteService
	SuggestService   interfaces.SuggestService
	AdvisorService   interfaces.AdvisorService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients and services.
// configPath may be empty, in which case the default resolution logic is
// used.
func NewApp(configPath string) (*App, error) {
	binDir := getBinaryDir()

	// A .env next to the binary or in the CWD seeds provider keys before
	// config loading; absent files are ignored.
	common.LoadDotEnv(filepath.Join(binDir, ".env"), ".env")

	// Load configuration - check provided path, FOLIO_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("FOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "folio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/folio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := surrealdb.NewManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	if config.Clients.Finnhub.APIKey == "" {
		logger.Warn().Msg("Finnhub API key not configured - quotes and suggestions will be unavailable")
	}
	marketClient := finnhub.NewClient(config.Clients.Finnhub.APIKey,
		finnhub.WithBaseURL(config.Clients.Finnhub.BaseURL),
		finnhub.WithLogger(logger),
		finnhub.WithRateLimit(config.Clients.Finnhub.RateLimit),
		finnhub.WithTimeout(config.Clients.Finnhub.GetTimeout()),
	)

	llmClient, err := newLLMClient(context.Background(), config, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:       config,
		Logger:       logger,
		Storage:      storageManager,
		MarketClient: marketClient,
		LLMClient:    llmClient,
		StartupTime:  time.Now(),
	}

	a.PortfolioService = portfolio.NewService(storageManager, logger)
	a.QuoteService = quote.NewService(marketClient, logger)
	a.SuggestService = suggest.NewService(marketClient, logger)
	a.AdvisorService = advisor.NewService(llmClient, marketClient, logger)

	return a, nil
}

// newLLMClient constructs the configured language-model backend. A missing
// API key degrades the AI endpoints instead of failing startup; an unknown
// provider name is a configuration error.
func newLLMClient(ctx context.Context, config *common.Config, logger *common.Logger) (interfaces.LLMClient, error) {
	switch config.Clients.LLM.Provider {
	case "", "openai":
		if config.Clients.OpenAI.APIKey == "" {
			logger.Warn().Msg("OpenAI API key not configured - AI advice will be unavailable")
			return nil, nil
		}
		return openai.NewClient(config.Clients.OpenAI.APIKey,
			openai.WithModel(config.Clients.OpenAI.Model),
			openai.WithLogger(logger),
		)
	case "gemini":
		if config.Clients.Gemini.APIKey == "" {
			logger.Warn().Msg("Gemini API key not configured - AI advice will be unavailable")
			return nil, nil
		}
		return gemini.NewClient(ctx, config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
	default:
		return nil, fmt.Errorf("unknown llm provider %q (expected \"openai\" or \"gemini\")", config.Clients.LLM.Provider)
	}
}

// Close releases storage and client resources.
func (a *App) Close() {
	if a.LLMClient != nil {
		if err := a.LLMClient.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close LLM client")
		}
	}
	if a.Storage != nil {
		if err := a.Storage.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}
}
