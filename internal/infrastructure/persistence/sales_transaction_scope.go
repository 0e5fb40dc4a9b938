package persistence

import (
	"context"

	"gorm.io/gorm"

	appsales "github.com/chemstock/backend/internal/application/sales"
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/sales"
)

// GormSalesTransactionScope implements sales.TransactionScope using GORM
// transactions. The sale insert and the batch debit commit atomically.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesRepositories{tx: tx})
	})
}

type gormSalesRepositories struct {
	tx *gorm.DB
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormSalesRepositories) SaleRepo() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// BatchRepo returns the finished-batch repository scoped to the current transaction
func (r *gormSalesRepositories) BatchRepo() production.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSalesRepositories)(nil)
