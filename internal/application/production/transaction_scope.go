package production

import (
	"context"

	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/stock"
)

// TransactionScope provides transactional access to the repositories a mix
// touches. Batch creation and all source-lot debits run inside one database
// transaction: they commit together or not at all.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the production-side
// repositories within a transaction. All repositories returned share the
// same underlying database transaction.
type TransactionalRepositories interface {
	// LotRepo returns the raw-material lot repository scoped to the transaction
	LotRepo() stock.LotRepository
	// BatchRepo returns the finished-batch repository scoped to the transaction
	BatchRepo() production.BatchRepository
}

// NoOpTransactionScope runs the function without a real transaction. Useful
// for tests with mock repositories.
type NoOpTransactionScope struct {
	lotRepo   stock.LotRepository
	batchRepo production.BatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(lotRepo stock.LotRepository, batchRepo production.BatchRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{lotRepo: lotRepo, batchRepo: batchRepo}
}

// Execute runs the function without transactional guarantees
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LotRepo returns the raw-material lot repository
func (s *NoOpTransactionScope) LotRepo() stock.LotRepository {
	return s.lotRepo
}

// BatchRepo returns the finished-batch repository
func (s *NoOpTransactionScope) BatchRepo() production.BatchRepository {
	return s.batchRepo
}
