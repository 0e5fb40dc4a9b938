package partner

import (
	"context"

	"github.com/chemstock/backend/internal/domain/partner"
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ClientService handles client CRUD operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create registers a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.CompanyName, req.Address, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToClientResponse(client)
	return &response, nil
}

// List retrieves clients ordered by company name
func (s *ClientService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ClientResponse], error) {
	clients, err := s.clientRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.clientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := shared.NewPaginated(ToClientResponses(clients), total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update replaces a client's details
func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := client.Update(req.CompanyName, req.Address, req.Phone); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client
func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.clientRepo.Delete(ctx, id)
}
