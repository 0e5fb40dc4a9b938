package production

import (
	"strings"
	"time"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Batch represents a finished-good lot produced by mixing raw-material lots.
// Its density is the blend's weighted density, frozen at creation: sales
// debit the mass and re-derive the volume from this density, it is never
// recomputed from the remaining mass/volume pair.
type Batch struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(200);not null"`
	MassTotalKg  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	VolumeTotalL decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	FinalDensity decimal.Decimal `gorm:"type:decimal(18,6);not null"`
}

// TableName returns the table name for GORM
func (Batch) TableName() string {
	return "finished_batches"
}

// NewBatch creates a finished batch from blend totals. The final density is
// derived once here and kept for the life of the batch.
func NewBatch(name string, massTotalKg, volumeTotalL decimal.Decimal) (*Batch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch name cannot be empty")
	}
	if massTotalKg.LessThanOrEqual(decimal.Zero) || volumeTotalL.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Batch totals must be positive")
	}

	return &Batch{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         strings.TrimSpace(name),
		MassTotalKg:  massTotalKg,
		VolumeTotalL: volumeTotalL,
		FinalDensity: valueobject.BlendedDensity(massTotalKg, volumeTotalL),
	}, nil
}

// HasStock reports whether the batch still has mass on hand
func (b *Batch) HasStock() bool {
	return b.MassTotalKg.GreaterThan(decimal.Zero)
}

// DebitMass reduces the batch's mass by quantityKg and re-derives the
// remaining volume from the frozen density. The batch is left untouched when
// the debit exceeds the mass on hand.
func (b *Batch) DebitMass(quantityKg decimal.Decimal) error {
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Sale quantity must be positive")
	}
	if quantityKg.GreaterThan(b.MassTotalKg) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Sale quantity exceeds stock for batch "+b.Name)
	}

	b.MassTotalKg = b.MassTotalKg.Sub(quantityKg)
	b.VolumeTotalL = valueobject.VolumeFromMass(b.MassTotalKg, b.FinalDensity)
	b.UpdatedAt = time.Now()

	return nil
}
