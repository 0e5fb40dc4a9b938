package hr

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EmployeeRepository defines the interface for employee persistence
type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Employee, error)
	Save(ctx context.Context, employee *Employee) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
