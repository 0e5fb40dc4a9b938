package sales

import (
	"context"

	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories a sale
// touches. The sale insert and the batch debit commit together or not at all.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sales-side repositories
// within a transaction
type TransactionalRepositories interface {
	// SaleRepo returns the sale repository scoped to the transaction
	SaleRepo() sales.SaleRepository
	// BatchRepo returns the finished-batch repository scoped to the transaction
	BatchRepo() production.BatchRepository
}

// NoOpTransactionScope runs the function without a real transaction. Useful
// for tests with mock repositories.
type NoOpTransactionScope struct {
	saleRepo  sales.SaleRepository
	batchRepo production.BatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(saleRepo sales.SaleRepository, batchRepo production.BatchRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{saleRepo: saleRepo, batchRepo: batchRepo}
}

// Execute runs the function without transactional guarantees
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() sales.SaleRepository {
	return s.saleRepo
}

// BatchRepo returns the finished-batch repository
func (s *NoOpTransactionScope) BatchRepo() production.BatchRepository {
	return s.batchRepo
}
