package report

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MassBalance is the reconciliation identity shown on the dashboard:
// produced = sold + on hand. Produced is reconstructed, not ledgered, so the
// identity holds only while no finished batch is deleted or hand-edited
// outside the mix/sale paths.
type MassBalance struct {
	ProducedKg decimal.Decimal `json:"produced_kg"`
	SoldKg     decimal.Decimal `json:"sold_kg"`
	OnHandKg   decimal.Decimal `json:"on_hand_kg"`
}

// Summary aggregates one month's figures plus the all-time mass balance
type Summary struct {
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	RawMaterialSpend decimal.Decimal `json:"raw_material_spend"`
	Payroll          decimal.Decimal `json:"payroll"`
	KgSold           decimal.Decimal `json:"kg_sold"`
	MassBalance      MassBalance     `json:"mass_balance"`
}

// DashboardService folds store snapshots into the dashboard summary
type DashboardService struct {
	repo DashboardRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo}
}

// Summarize computes the dashboard figures for one month/year
func (s *DashboardService) Summarize(ctx context.Context, month, year int) (*Summary, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Month must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Year out of range")
	}

	purchases, err := s.repo.PurchaseEntries(ctx)
	if err != nil {
		return nil, err
	}
	payroll, err := s.repo.PayrollEntries(ctx)
	if err != nil {
		return nil, err
	}
	saleRows, err := s.repo.SaleEntries(ctx)
	if err != nil {
		return nil, err
	}
	onHand, err := s.repo.FinishedMassOnHand(ctx)
	if err != nil {
		return nil, err
	}

	kgSoldPeriod, kgSoldAllTime := SumSales(saleRows, month, year)

	return &Summary{
		Month:            month,
		Year:             year,
		RawMaterialSpend: SumPurchases(purchases, month, year),
		Payroll:          SumPayroll(payroll, month, year),
		KgSold:           kgSoldPeriod,
		MassBalance: MassBalance{
			ProducedKg: onHand.Add(kgSoldAllTime),
			SoldKg:     kgSoldAllTime,
			OnHandKg:   onHand,
		},
	}, nil
}
