package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/domain/hr"
	"github.com/chemstock/backend/internal/domain/shared"
)

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByID finds an employee by its ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*hr.Employee, error) {
	var employee hr.Employee
	if err := r.db.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// FindAll finds all employees matching the filter
func (r *GormEmployeeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]hr.Employee, error) {
	var employees []hr.Employee
	query := r.applyFilter(r.db.WithContext(ctx).Model(&hr.Employee{}), filter)
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete deletes an employee
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&hr.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts employees matching the filter
func (r *GormEmployeeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&hr.Employee{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormEmployeeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormEmployeeRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR role ILIKE ?", pattern, pattern)
	}
	return query
}

var _ hr.EmployeeRepository = (*GormEmployeeRepository)(nil)
