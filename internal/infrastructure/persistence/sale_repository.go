package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chemstock/backend/internal/domain/sales"
	"github.com/chemstock/backend/internal/domain/shared"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllWithNames finds sales joined with client and batch names for listing
func (r *GormSaleRepository) FindAllWithNames(ctx context.Context, filter shared.Filter) ([]sales.SaleWithNames, error) {
	var records []sales.SaleWithNames
	query := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Select("sales.*, clients.company_name AS client_name, finished_batches.name AS batch_name").
		Joins("LEFT JOIN clients ON clients.id = sales.client_id").
		Joins("LEFT JOIN finished_batches ON finished_batches.id = sales.batch_id")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("clients.company_name ILIKE ? OR finished_batches.name ILIKE ?", pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	query = query.Order("sales.created_at DESC")

	if err := query.Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Count counts sales matching the filter
func (r *GormSaleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&sales.Sale{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)
