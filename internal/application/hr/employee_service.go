package hr

import (
	"context"

	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// EmployeeService handles employee CRUD operations
type EmployeeService struct {
	employeeRepo hr.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo hr.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// Create registers a new active employee
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	hireDate, err := valueobject.NewEntryDate(req.HireDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hire date must be YYYY-MM-DD")
	}

	employee, err := hr.NewEmployee(req.Name, req.Role, req.Salary, hireDate)
	if err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(employee)
	return &response, nil
}

// List retrieves employees ordered by name
func (s *EmployeeService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[EmployeeResponse], error) {
	employees, err := s.employeeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.employeeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToEmployeeResponses(employees), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update replaces an employee's details, including the active flag
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hireDate, err := valueobject.NewEntryDate(req.HireDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Hire date must be YYYY-MM-DD")
	}

	if err := employee.Update(req.Name, req.Role, req.Salary, hireDate, req.Active); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Save(ctx, employee); err != nil {
		return nil, err
	}

	response := ToEmployeeResponse(employee)
	return &response, nil
}

// Delete removes an employee
func (s *EmployeeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.employeeRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, id)
}
