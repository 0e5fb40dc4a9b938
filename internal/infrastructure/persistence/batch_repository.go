package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/shared"
)

// GormBatchRepository implements production.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByID finds a finished batch by its ID
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*production.Batch, error) {
	var batch production.Batch
	if err := r.db.WithContext(ctx).First(&batch, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &batch, nil
}

// FindAll finds all batches matching the filter, newest first
func (r *GormBatchRepository) FindAll(ctx context.Context, filter shared.Filter) ([]production.Batch, error) {
	var batches []production.Batch
	query := r.applyFilter(r.db.WithContext(ctx).Model(&production.Batch{}), filter)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// FindInStock finds batches with remaining mass, used for sale selection
func (r *GormBatchRepository) FindInStock(ctx context.Context, filter shared.Filter) ([]production.Batch, error) {
	var batches []production.Batch
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&production.Batch{}).Where("mass_total_kg > ?", decimal.Zero),
		filter,
	)
	if err := query.Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *production.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// Delete deletes a batch
func (r *GormBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&production.Batch{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts batches matching the filter
func (r *GormBatchRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&production.Batch{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumMassOnHand returns the total finished mass currently in stock
func (r *GormBatchRepository) SumMassOnHand(ctx context.Context) (decimal.Decimal, error) {
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

func (r *GormBatchRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("created_at DESC")
	}

	return query
}

func (r *GormBatchRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ production.BatchRepository = (*GormBatchRepository)(nil)
