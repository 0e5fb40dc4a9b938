package sales

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SaleWithNames is a read model for the sales history: a sale joined with
// the client and product names it references.
type SaleWithNames struct {
	Sale
	ClientName string
	BatchName  string
}

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindAllWithNames finds all sales with client and product names joined
	// in by the store.
	FindAllWithNames(ctx context.Context, filter shared.Filter) ([]SaleWithNames, error)

	// Save creates or updates a sale
	Save(ctx context.Context, sale *Sale) error

	// Count counts sales matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
