package report

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseEntry is one raw-material purchase row for aggregation
type PurchaseEntry struct {
	UnitCost  decimal.Decimal
	EntryDate valueobject.EntryDate
}

// PayrollEntry is one employee row for aggregation
type PayrollEntry struct {
	Salary   decimal.Decimal
	HireDate valueobject.EntryDate
	Active   bool
}

// SaleEntry is one sale row for aggregation. SoldOn is the calendar date of
// the sale, already reduced to YYYY-MM-DD by the store.
type SaleEntry struct {
	QuantityKg decimal.Decimal
	SoldOn     valueobject.EntryDate
}

// DashboardRepository provides the snapshot rows the dashboard folds into
// period totals
type DashboardRepository interface {
	// PurchaseEntries returns cost and entry date of every raw-material lot
	PurchaseEntries(ctx context.Context) ([]PurchaseEntry, error)

	// PayrollEntries returns salary, hire date and active flag of every employee
	PayrollEntries(ctx context.Context) ([]PayrollEntry, error)

	// SaleEntries returns quantity and sale date of every sale ever recorded
	SaleEntries(ctx context.Context) ([]SaleEntry, error)

	// FinishedMassOnHand returns the total finished-goods mass currently in stock
	FinishedMassOnHand(ctx context.Context) (decimal.Decimal, error)
}
