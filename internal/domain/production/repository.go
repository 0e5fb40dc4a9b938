package production

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRepository defines the interface for finished-batch persistence
type BatchRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindAll finds all batches matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// FindInStock finds batches with mass on hand, for the sales screen
	FindInStock(ctx context.Context, filter shared.Filter) ([]Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *Batch) error

	// Delete deletes a batch. Raw materials consumed by the batch are not
	// returned to stock.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts batches matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// SumMassOnHand sums the mass on hand across all finished batches
	SumMassOnHand(ctx context.Context) (decimal.Decimal, error)
}
