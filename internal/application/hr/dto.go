package hr

import (
	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is the application-level request to register an employee
type CreateEmployeeRequest struct {
	Name     string
	Role     string
	Salary   decimal.Decimal
	HireDate string // YYYY-MM-DD
}

// UpdateEmployeeRequest is the application-level request to update an employee
type UpdateEmployeeRequest struct {
	Name     string
	Role     string
	Salary   decimal.Decimal
	HireDate string
	Active   bool
}

// EmployeeResponse is the application-level view of an employee
type EmployeeResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  string          `json:"hire_date"`
	Active    bool            `json:"active"`
	CreatedAt string          `json:"created_at"`
}

// ToEmployeeResponse maps a domain employee to its response representation
func ToEmployeeResponse(employee *hr.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        employee.ID,
		Name:      employee.Name,
		Role:      employee.Role,
		Salary:    employee.Salary,
		HireDate:  employee.HireDate.String(),
		Active:    employee.Active,
		CreatedAt: employee.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToEmployeeResponses maps a slice of domain employees
func ToEmployeeResponses(employees []hr.Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return responses
}
