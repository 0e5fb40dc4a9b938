package production

import (
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/chemstock/backend/internal/domain/stock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ingredient is one raw-material contribution to a mix, chosen by volume
type Ingredient struct {
	LotID   uuid.UUID
	VolumeL decimal.Decimal
}

// Mixer is the domain service that combines raw-material lots into one
// finished batch. It validates every ingredient against the source lots
// before mutating anything, so a rejected mix leaves all lots untouched.
type Mixer struct{}

// NewMixer creates a new Mixer
func NewMixer() *Mixer {
	return &Mixer{}
}

// Mix builds a finished batch from the given ingredients and debits each
// source lot by the volume it contributed. The blend totals are
//
//	massTotal   = Σ volume_i * density_i
//	volumeTotal = Σ volume_i
//	density     = massTotal / volumeTotal
//
// The caller persists the returned batch and the mutated lots in one
// transaction.
func (m *Mixer) Mix(name string, ingredients []Ingredient, lots map[uuid.UUID]*stock.Lot) (*Batch, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch name cannot be empty")
	}
	if len(ingredients) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "A mix needs at least one ingredient")
	}

	// Validation pass: nothing is debited until every ingredient checks out.
	for _, ing := range ingredients {
		lot, ok := lots[ing.LotID]
		if !ok {
			return nil, shared.ErrNotFound
		}
		if ing.VolumeL.LessThanOrEqual(decimal.Zero) {
			return nil, shared.NewDomainError("INVALID_INPUT", "Ingredient volume must be positive for lot "+lot.Name)
		}
		if ing.VolumeL.GreaterThan(lot.VolumeL) {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				"Insufficient stock for lot "+lot.Name+": available "+lot.VolumeL.StringFixed(2)+" L")
		}
	}

	massTotal := decimal.Zero
	volumeTotal := decimal.Zero
	for _, ing := range ingredients {
		lot := lots[ing.LotID]
		massTotal = massTotal.Add(valueobject.MassFromVolume(ing.VolumeL, lot.DensityKgL))
		volumeTotal = volumeTotal.Add(ing.VolumeL)
	}

	batch, err := NewBatch(name, massTotal, volumeTotal)
	if err != nil {
		return nil, err
	}

	for _, ing := range ingredients {
		if err := lots[ing.LotID].DebitVolume(ing.VolumeL); err != nil {
			return nil, err
		}
	}

	return batch, nil
}
