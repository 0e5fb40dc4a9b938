package partner

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Save(ctx context.Context, client *Client) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
