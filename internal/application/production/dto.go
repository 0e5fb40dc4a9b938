package production

import (
	"github.com/chemstock/backend/internal/domain/production"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngredientRequest is one raw-material contribution to a mix
type IngredientRequest struct {
	LotID   uuid.UUID
	VolumeL decimal.Decimal
}

// ProduceRequest is the application-level request to mix a batch
type ProduceRequest struct {
	Name        string
	Ingredients []IngredientRequest
}

// BatchResponse is the application-level view of a finished batch
type BatchResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	MassTotalKg  decimal.Decimal `json:"mass_total_kg"`
	VolumeTotalL decimal.Decimal `json:"volume_total_l"`
	FinalDensity decimal.Decimal `json:"final_density"`
	CreatedAt    string          `json:"created_at"`
}

// ToBatchResponse maps a domain batch to its response representation
func ToBatchResponse(batch *production.Batch) BatchResponse {
	return BatchResponse{
		ID:           batch.ID,
		Name:         batch.Name,
		MassTotalKg:  batch.MassTotalKg,
		VolumeTotalL: batch.VolumeTotalL,
		FinalDensity: batch.FinalDensity,
		CreatedAt:    batch.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToBatchResponses maps a slice of domain batches
func ToBatchResponses(batches []production.Batch) []BatchResponse {
	responses := make([]BatchResponse, len(batches))
	for i := range batches {
		responses[i] = ToBatchResponse(&batches[i])
	}
	return responses
}
