package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/stock"
)

// GormLotRepository implements stock.LotRepository using GORM
type GormLotRepository struct {
	db *gorm.DB
}

// NewGormLotRepository creates a new GormLotRepository
func NewGormLotRepository(db *gorm.DB) *GormLotRepository {
	return &GormLotRepository{db: db}
}

// FindByID finds a raw material lot by its ID
func (r *GormLotRepository) FindByID(ctx context.Context, id uuid.UUID) (*stock.Lot, error) {
	var lot stock.Lot
	if err := r.db.WithContext(ctx).First(&lot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByIDs finds multiple lots by their IDs
func (r *GormLotRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]stock.Lot, error) {
	if len(ids) == 0 {
		return []stock.Lot{}, nil
	}
	var lots []stock.Lot
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// FindAll finds all lots matching the filter, newest entry first
func (r *GormLotRepository) FindAll(ctx context.Context, filter shared.Filter) ([]stock.Lot, error) {
	var lots []stock.Lot
	query := r.applyFilter(r.db.WithContext(ctx).Model(&stock.Lot{}), filter)
	if err := query.Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// Save creates or updates a lot
func (r *GormLotRepository) Save(ctx context.Context, lot *stock.Lot) error {
	return r.db.WithContext(ctx).Save(lot).Error
}

// Delete deletes a lot
func (r *GormLotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&stock.Lot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts lots matching the filter
func (r *GormLotRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&stock.Lot{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormLotRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("entry_date DESC, created_at DESC")
	}

	return query
}

func (r *GormLotRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	return query
}

var _ stock.LotRepository = (*GormLotRepository)(nil)
