package stock

import (
	"github.com/chemstock/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateLotRequest is the application-level request to register a lot entry
type CreateLotRequest struct {
	Name       string
	MassKg     decimal.Decimal
	DensityKgL decimal.Decimal
	UnitCost   decimal.Decimal
	EntryDate  string // YYYY-MM-DD
}

// UpdateLotRequest is the application-level request to update a lot
type UpdateLotRequest struct {
	Name       string
	MassKg     decimal.Decimal
	DensityKgL decimal.Decimal
	UnitCost   decimal.Decimal
	EntryDate  string
}

// LotResponse is the application-level view of a raw-material lot
type LotResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	MassKg     decimal.Decimal `json:"mass_kg"`
	DensityKgL decimal.Decimal `json:"density_kg_l"`
	VolumeL    decimal.Decimal `json:"volume_l"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	EntryDate  string          `json:"entry_date"`
	CreatedAt  string          `json:"created_at"`
}

// ToLotResponse maps a domain lot to its response representation
func ToLotResponse(lot *stock.Lot) LotResponse {
	return LotResponse{
		ID:         lot.ID,
		Name:       lot.Name,
		MassKg:     lot.MassKg,
		DensityKgL: lot.DensityKgL,
		VolumeL:    lot.VolumeL,
		UnitCost:   lot.UnitCost,
		EntryDate:  lot.EntryDate.String(),
		CreatedAt:  lot.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToLotResponses maps a slice of domain lots
func ToLotResponses(lots []stock.Lot) []LotResponse {
	responses := make([]LotResponse, len(lots))
	for i := range lots {
		responses[i] = ToLotResponse(&lots[i])
	}
	return responses
}
