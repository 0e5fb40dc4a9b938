package sales

import (
	"context"

	"github.com/chemstock/backend/internal/domain/partner"
	"github.com/chemstock/backend/internal/domain/sales"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SalesService handles selling finished batches to clients
type SalesService struct {
	saleRepo   sales.SaleRepository
	clientRepo partner.ClientRepository
	txScope    TransactionScope
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo sales.SaleRepository, clientRepo partner.ClientRepository, txScope TransactionScope) *SalesService {
	return &SalesService{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		txScope:    txScope,
	}
}

// Sell records one sale and debits the referenced batch: mass decreases by
// the sold quantity and volume is re-derived from the batch's frozen density.
// Both writes run in one transaction.
func (s *SalesService) Sell(ctx context.Context, req SellRequest) (*SaleResponse, error) {
	if req.ClientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client is required")
	}
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	var response SaleResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		batch, err := repos.BatchRepo().FindByID(ctx, req.BatchID)
		if err != nil {
			return err
		}

		sale, err := sales.NewSale(req.ClientID, req.BatchID, req.QuantityKg, req.SaleValue)
		if err != nil {
			return err
		}
		if err := batch.DebitMass(req.QuantityKg); err != nil {
			return err
		}

		if err := repos.SaleRepo().Save(ctx, sale); err != nil {
			return err
		}
		if err := repos.BatchRepo().Save(ctx, batch); err != nil {
			return err
		}

		response = ToSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// List retrieves the sales history with client and product names joined in,
// newest first by default
func (s *SalesService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	rows, err := s.saleRepo.FindAllWithNames(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToSaleWithNamesResponses(rows), total, filter.Page, filter.PageSize)
	return &result, nil
}
