package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/application/report"
	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/sales"
	"github.com/chemstock/backend/internal/domain/stock"
)

// GormDashboardRepository implements report.DashboardRepository using GORM
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// PurchaseEntries returns cost and entry date of every raw-material lot
func (r *GormDashboardRepository) PurchaseEntries(ctx context.Context) ([]report.PurchaseEntry, error) {
	var entries []report.PurchaseEntry
	if err := r.db.WithContext(ctx).
		Model(&stock.Lot{}).
		Select("unit_cost, entry_date").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// PayrollEntries returns salary, hire date and active flag of every employee
func (r *GormDashboardRepository) PayrollEntries(ctx context.Context) ([]report.PayrollEntry, error) {
	var entries []report.PayrollEntry
	if err := r.db.WithContext(ctx).
		Model(&hr.Employee{}).
		Select("salary, hire_date, active").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// SaleEntries returns quantity and sale date of every sale ever recorded.
// The record timestamp is reduced to a calendar date in the store so period
// matching works on plain date strings.
func (r *GormDashboardRepository) SaleEntries(ctx context.Context) ([]report.SaleEntry, error) {
	var entries []report.SaleEntry
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Select("quantity_kg, to_char(created_at, 'YYYY-MM-DD') AS sold_on").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FinishedMassOnHand returns the total finished-goods mass currently in stock
func (r *GormDashboardRepository) FinishedMassOnHand(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(&production.Batch{}).
		Select("COALESCE(SUM(mass_total_kg), 0)").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
