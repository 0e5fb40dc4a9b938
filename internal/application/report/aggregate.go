package report

import (
	"github.com/shopspring/decimal"
)

// Pure folds over snapshot rows. Period matching compares month and year as
// integers on the stored date string; no time.Time is ever constructed, so
// totals cannot shift across a timezone boundary.

// SumPurchases totals the cost of purchases entered in the given period
func SumPurchases(entries []PurchaseEntry, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.EntryDate.InPeriod(month, year) {
			total = total.Add(e.UnitCost)
		}
	}
	return total
}

// SumPayroll totals the salaries of employees hired in or before the given
// period who are active now. The active flag is current state, not a
// historical reconstruction: an employee deactivated after the target period
// is excluded even for months they worked.
func SumPayroll(entries []PayrollEntry, month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Active && e.HireDate.OnOrBeforePeriod(month, year) {
			total = total.Add(e.Salary)
		}
	}
	return total
}

// SumSales returns the mass sold in the given period and the all-time mass
// sold, folded in one pass
func SumSales(entries []SaleEntry, month, year int) (period, allTime decimal.Decimal) {
	period = decimal.Zero
	allTime = decimal.Zero
	for _, e := range entries {
		allTime = allTime.Add(e.QuantityKg)
		if e.SoldOn.InPeriod(month, year) {
			period = period.Add(e.QuantityKg)
		}
	}
	return period, allTime
}
