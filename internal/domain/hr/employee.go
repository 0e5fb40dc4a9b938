package hr

import (
	"strings"
	"time"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Employee represents a payroll entry: name, role, monthly salary and an
// active flag. Employees only feed the payroll aggregation, they never debit
// stock.
type Employee struct {
	shared.BaseEntity
	Name     string                `gorm:"type:varchar(200);not null"`
	Role     string                `gorm:"type:varchar(100);not null"`
	Salary   decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	HireDate valueobject.EntryDate `gorm:"type:date"`
	Active   bool                  `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new active employee
func NewEmployee(name, role string, salary decimal.Decimal, hireDate valueobject.EntryDate) (*Employee, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Employee name cannot be empty")
	}
	if strings.TrimSpace(role) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Employee role cannot be empty")
	}
	if salary.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Salary cannot be negative")
	}

	return &Employee{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Role:       strings.TrimSpace(role),
		Salary:     salary,
		HireDate:   hireDate,
		Active:     true,
	}, nil
}

// Update replaces the employee's details, including the active flag
func (e *Employee) Update(name, role string, salary decimal.Decimal, hireDate valueobject.EntryDate, active bool) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Employee name cannot be empty")
	}
	if salary.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Salary cannot be negative")
	}

	e.Name = strings.TrimSpace(name)
	e.Role = strings.TrimSpace(role)
	e.Salary = salary
	e.HireDate = hireDate
	e.Active = active
	e.UpdatedAt = time.Now()

	return nil
}

// CountsTowardPayroll reports whether the employee's salary counts for the
// given month/year: hired in or before the period and currently active. The
// active flag is read as of now, not reconstructed for past periods.
func (e *Employee) CountsTowardPayroll(month, year int) bool {
	return e.Active && e.HireDate.OnOrBeforePeriod(month, year)
}
