// Package interfaces defines service contracts for folio
package interfaces

import (
	"context"

	"github.com/foliolab/folio/internal/models"
)

// StorageManager coordinates the document-store backends.
type StorageManager interface {
	PortfolioStore() PortfolioStore

	Close() error
}

// PortfolioStore persists Position records in the document store.
type PortfolioStore interface {
	// List returns all stored positions in store-native order.
	List(ctx context.Context) ([]*models.Position, error)

	// Create persists a new position and returns the stored record with
	// its assigned identity.
	Create(ctx context.Context, position *models.Position) (*models.Position, error)

	// Delete removes the position with the given identity. Deleting an
	// unknown identity is a successful no-op.
	Delete(ctx context.Context, id string) error

	Close() error
}
