package production

import (
	"context"

	"github.com/chemstock/backend/internal/domain/production"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/stock"
	"github.com/google/uuid"
)

// ProductionService handles mixing raw-material lots into finished batches
type ProductionService struct {
	batchRepo production.BatchRepository
	txScope   TransactionScope
	mixer     *production.Mixer
}

// NewProductionService creates a new ProductionService
func NewProductionService(batchRepo production.BatchRepository, txScope TransactionScope) *ProductionService {
	return &ProductionService{
		batchRepo: batchRepo,
		txScope:   txScope,
		mixer:     production.NewMixer(),
	}
}

// Produce mixes the requested ingredients into one finished batch and debits
// every source lot, all inside a single transaction. A validation or stock
// failure aborts before any write; a store failure rolls back the writes
// already applied.
func (s *ProductionService) Produce(ctx context.Context, req ProduceRequest) (*BatchResponse, error) {
	if len(req.Ingredients) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A mix needs at least one ingredient")
	}

	ingredients := make([]production.Ingredient, len(req.Ingredients))
	ids := make([]uuid.UUID, len(req.Ingredients))
	for i, ing := range req.Ingredients {
		ingredients[i] = production.Ingredient{LotID: ing.LotID, VolumeL: ing.VolumeL}
		ids[i] = ing.LotID
	}

	var response BatchResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		lots, err := repos.LotRepo().FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(lots) != len(uniqueIDs(ids)) {
			return shared.ErrNotFound
		}

		lotsByID := make(map[uuid.UUID]*stock.Lot, len(lots))
		for i := range lots {
			lotsByID[lots[i].ID] = &lots[i]
		}

		batch, err := s.mixer.Mix(req.Name, ingredients, lotsByID)
		if err != nil {
			return err
		}

		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}
		for i := range lots {
			if err := repos.LotRepo().Save(ctx, &lots[i]); err != nil {
				return err
			}
		}

		response = ToBatchResponse(batch)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// GetByID retrieves a finished batch by ID
func (s *ProductionService) GetByID(ctx context.Context, id uuid.UUID) (*BatchResponse, error) {
	batch, err := s.batchRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToBatchResponse(batch)
	return &response, nil
}

// List retrieves finished batches. When inStock is true only batches with
// mass on hand are returned, which is what the sales screen shows.
func (s *ProductionService) List(ctx context.Context, filter shared.Filter, inStock bool) (*shared.Paginated[BatchResponse], error) {
	var (
		batches []production.Batch
		err     error
	)
	if inStock {
		batches, err = s.batchRepo.FindInStock(ctx, filter)
	} else {
		batches, err = s.batchRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.batchRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToBatchResponses(batches), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a finished batch record. The raw materials it consumed are
// not returned to stock.
func (s *ProductionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.batchRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.batchRepo.Delete(ctx, id)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
