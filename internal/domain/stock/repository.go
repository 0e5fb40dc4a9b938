package stock

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LotRepository defines the interface for raw-material lot persistence
type LotRepository interface {
	// FindByID finds a lot by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Lot, error)

	// FindByIDs finds multiple lots by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Lot, error)

	// FindAll finds all lots matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Lot, error)

	// Save creates or updates a lot
	Save(ctx context.Context, lot *Lot) error

	// Delete deletes a lot. Historical production batches that consumed from
	// it are not touched.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts lots matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
