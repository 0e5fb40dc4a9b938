package persistence

import (
	"context"

	"gorm.io/gorm"

	appproduction "github.com/chemstock/backend/internal/application/production"
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/stock"
)

// GormProductionTransactionScope implements production.TransactionScope using
// GORM transactions. Batch creation and lot debits commit atomically.
type GormProductionTransactionScope struct {
	db *gorm.DB
}

// NewGormProductionTransactionScope creates a new GormProductionTransactionScope
func NewGormProductionTransactionScope(db *gorm.DB) *GormProductionTransactionScope {
	return &GormProductionTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormProductionTransactionScope) Execute(ctx context.Context, fn func(repos appproduction.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormProductionRepositories{tx: tx})
	})
}

type gormProductionRepositories struct {
	tx *gorm.DB
}

// LotRepo returns the raw-material lot repository scoped to the current transaction
func (r *gormProductionRepositories) LotRepo() stock.LotRepository {
	return NewGormLotRepository(r.tx)
}

// BatchRepo returns the finished-batch repository scoped to the current transaction
func (r *gormProductionRepositories) BatchRepo() production.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

var _ appproduction.TransactionScope = (*GormProductionTransactionScope)(nil)
var _ appproduction.TransactionalRepositories = (*gormProductionRepositories)(nil)
