package stock

import (
	"context"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/chemstock/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// LotService handles raw-material stock operations
type LotService struct {
	lotRepo stock.LotRepository
}

// NewLotService creates a new LotService
func NewLotService(lotRepo stock.LotRepository) *LotService {
	return &LotService{lotRepo: lotRepo}
}

// Create registers a new raw-material lot entry
func (s *LotService) Create(ctx context.Context, req CreateLotRequest) (*LotResponse, error) {
	entryDate, err := valueobject.NewEntryDate(req.EntryDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Entry date must be YYYY-MM-DD")
	}

	lot, err := stock.NewLot(req.Name, req.MassKg, req.DensityKgL, req.UnitCost, entryDate)
	if err != nil {
		return nil, err
	}

	if err := s.lotRepo.Save(ctx, lot); err != nil {
		return nil, err
	}

	response := ToLotResponse(lot)
	return &response, nil
}

// GetByID retrieves a lot by ID
func (s *LotService) GetByID(ctx context.Context, id uuid.UUID) (*LotResponse, error) {
	lot, err := s.lotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToLotResponse(lot)
	return &response, nil
}

// List retrieves lots, newest entries first by default
func (s *LotService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[LotResponse], error) {
	lots, err := s.lotRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.lotRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToLotResponses(lots), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update replaces a lot's fields, re-deriving its volume
func (s *LotService) Update(ctx context.Context, id uuid.UUID, req UpdateLotRequest) (*LotResponse, error) {
	lot, err := s.lotRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entryDate, err := valueobject.NewEntryDate(req.EntryDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Entry date must be YYYY-MM-DD")
	}

	if err := lot.Update(req.Name, req.MassKg, req.DensityKgL, req.UnitCost, entryDate); err != nil {
		return nil, err
	}

	if err := s.lotRepo.Save(ctx, lot); err != nil {
		return nil, err
	}

	response := ToLotResponse(lot)
	return &response, nil
}

// Delete removes a lot unconditionally. Batches that consumed from it keep
// their recorded totals.
func (s *LotService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.lotRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.lotRepo.Delete(ctx, id)
}
