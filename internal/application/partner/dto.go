package partner

import (
	"github.com/chemstock/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateClientRequest is the application-level request to register a client
type CreateClientRequest struct {
	CompanyName string
	Address     string
	Phone       string
}

// UpdateClientRequest is the application-level request to update a client
type UpdateClientRequest struct {
	CompanyName string
	Address     string
	Phone       string
}

// ClientResponse is the application-level view of a client
type ClientResponse struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	CreatedAt   string    `json:"created_at"`
}

// ToClientResponse maps a domain client to its response representation
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		CompanyName: client.CompanyName,
		Address:     client.Address,
		Phone:       client.Phone,
		CreatedAt:   client.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToClientResponses maps a slice of domain clients
func ToClientResponses(clients []partner.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
