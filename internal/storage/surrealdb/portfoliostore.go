package surrealdb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/foliolab/folio/internal/common"
	"github.com/foliolab/folio/internal/interfaces"
	"github.com/foliolab/folio/internal/models"
)

// PortfolioStore persists Position records in the "position" table.
// The record identity lives in the SurrealDB record id, not in the
// document body; reads join the two back together.
type PortfolioStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

// positionRecord is the stored document body, without the identity.
type positionRecord struct {
	Ticker    string    `json:"ticker"`
	Quantity  float64   `json:"quantity"`
	BuyPrice  float64   `json:"buyPrice"`
	DateAdded time.Time `json:"dateAdded"`
}

// positionRow is a positionRecord as read back, with its record id.
type positionRow struct {
	ID        surrealmodels.RecordID `json:"id"`
	Ticker    string                 `json:"ticker"`
	Quantity  float64                `json:"quantity"`
	BuyPrice  float64                `json:"buyPrice"`
	DateAdded time.Time              `json:"dateAdded"`
}

func (r positionRow) toPosition() *models.Position {
	return &models.Position{
		ID:        fmt.Sprintf("%v", r.ID.ID),
		Ticker:    r.Ticker,
		Quantity:  r.Quantity,
		BuyPrice:  r.BuyPrice,
		DateAdded: r.DateAdded,
	}
}

func NewPortfolioStore(db *surrealdb.DB, logger *common.Logger) *PortfolioStore {
	return &PortfolioStore{
		db:     db,
		logger: logger,
	}
}

func (s *PortfolioStore) List(ctx context.Context) ([]*models.Position, error) {
	rows, err := surrealdb.Select[[]positionRow](ctx, s.db, surrealmodels.Table("position"))
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}

	positions := []*models.Position{}
	if rows != nil {
		for _, row := range *rows {
			positions = append(positions, row.toPosition())
		}
	}
	return positions, nil
}

func (s *PortfolioStore) Create(ctx context.Context, position *models.Position) (*models.Position, error) {
	if position.ID == "" {
		position.ID = uuid.NewString()
	}

	record := positionRecord{
		Ticker:    position.Ticker,
		Quantity:  position.Quantity,
		BuyPrice:  position.BuyPrice,
		DateAdded: position.DateAdded,
	}

	sql := "UPSERT $rid CONTENT $record"
	vars := map[string]any{
		"rid":    surrealmodels.NewRecordID("position", position.ID),
		"record": record,
	}

	if _, err := surrealdb.Query[[]positionRecord](ctx, s.db, sql, vars); err != nil {
		return nil, fmt.Errorf("failed to create position: %w", err)
	}

	s.logger.Debug().
		Str("id", position.ID).
		Str("ticker", position.Ticker).
		Msg("Position created")

	return position, nil
}

func (s *PortfolioStore) Delete(ctx context.Context, id string) error {
	_, err := surrealdb.Delete[positionRecord](ctx, s.db, surrealmodels.NewRecordID("position", id))
	if err != nil && !isNotFoundError(err) {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	return nil
}

func (s *PortfolioStore) Close() error {
	return nil
}

// Ensure PortfolioStore implements interfaces.PortfolioStore
var _ interfaces.PortfolioStore = (*PortfolioStore)(nil)
