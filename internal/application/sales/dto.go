package sales

import (
	"github.com/chemstock/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SellRequest is the application-level request to record a sale
type SellRequest struct {
	ClientID   uuid.UUID
	BatchID    uuid.UUID
	QuantityKg decimal.Decimal
	SaleValue  decimal.Decimal
}

// SaleResponse is the application-level view of a sale, with the client and
// product names the history screen shows
type SaleResponse struct {
	ID         uuid.UUID       `json:"id"`
	ClientID   uuid.UUID       `json:"client_id"`
	BatchID    uuid.UUID       `json:"batch_id"`
	ClientName string          `json:"client_name,omitempty"`
	BatchName  string          `json:"batch_name,omitempty"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	SaleValue  decimal.Decimal `json:"sale_value"`
	CreatedAt  string          `json:"created_at"`
}

// ToSaleResponse maps a domain sale to its response representation
func ToSaleResponse(sale *sales.Sale) SaleResponse {
	return SaleResponse{
		ID:         sale.ID,
		ClientID:   sale.ClientID,
		BatchID:    sale.BatchID,
		QuantityKg: sale.QuantityKg,
		SaleValue:  sale.SaleValue,
		CreatedAt:  sale.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToSaleWithNamesResponses maps joined sale rows
func ToSaleWithNamesResponses(rows []sales.SaleWithNames) []SaleResponse {
	responses := make([]SaleResponse, len(rows))
	for i := range rows {
		responses[i] = ToSaleResponse(&rows[i].Sale)
		responses[i].ClientName = rows[i].ClientName
		responses[i].BatchName = rows[i].BatchName
	}
	return responses
}
