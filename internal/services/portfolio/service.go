// Package portfolio manages stored positions
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/models"
)

// Service implements PortfolioService over the document store.
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
	now     func() time.Time // injectable clock for testing
}

// NewService creates a new portfolio service.
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// ListPositions returns all stored positions in store-native order.
func (s *Service) ListPositions(ctx context.Context) ([]*models.Position, error) {
	positions, err := s.storage.PortfolioStore().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return positions, nil
}

// CreatePosition validates the input, uppercases the ticker, stamps the
// creation time and persists the position.
func (s *Service) CreatePosition(ctx context.Context, ticker string, quantity, buyPrice float64) (*models.Position, error) {
	ticker = models.NormalizeTicker(ticker)

	if ticker == "" {
		return nil, fmt.Errorf("%w: ticker is required", models.ErrValidation)
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", models.ErrValidation)
	}
	if buyPrice < 0 {
		return nil, fmt.Errorf("%w: buyPrice must be non-negative", models.ErrValidation)
	}

	position := &models.Position{
		Ticker:    ticker,
		Quantity:  quantity,
		BuyPrice:  buyPrice,
		DateAdded: s.now().UTC(),
	}

	stored, err := s.storage.PortfolioStore().Create(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	s.logger.Info().
		Str("id", stored.ID).
		Str("ticker", stored.Ticker).
		Float64("quantity", stored.Quantity).
		Msg("Position added")

	return stored, nil
}

// DeletePosition removes a position by identity. Unknown identities are a
// successful no-op.
func (s *Service) DeletePosition(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", models.ErrValidation)
	}

	if err := s.storage.PortfolioStore().Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	return nil
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
