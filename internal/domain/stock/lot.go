package stock

import (
	"strings"
	"time"

	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/chemstock/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Lot represents a raw-material lot in stock: a tracked quantity of a single
// chemical with its mass, density and derived volume.
// It is the aggregate root for raw-material stock operations.
type Lot struct {
	shared.BaseEntity
	Name        string                `gorm:"type:varchar(200);not null"`
	MassKg      decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	DensityKgL  decimal.Decimal       `gorm:"type:decimal(18,6);not null"` // kg per liter, constant per material
	VolumeL     decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"` // derived: MassKg / DensityKgL
	UnitCost    decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"` // purchase cost of the lot
	EntryDate   valueobject.EntryDate `gorm:"type:date"`
}

// TableName returns the table name for GORM
func (Lot) TableName() string {
	return "raw_material_lots"
}

// NewLot creates a new raw-material lot. Volume is derived from mass and
// density; a lot cannot be created with non-positive mass or density.
func NewLot(name string, massKg, densityKgL, unitCost decimal.Decimal, entryDate valueobject.EntryDate) (*Lot, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Lot name cannot be empty")
	}
	if massKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Lot mass must be positive")
	}
	if densityKgL.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Lot density must be positive")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Lot cost cannot be negative")
	}

	return &Lot{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		MassKg:     massKg,
		DensityKgL: densityKgL,
		VolumeL:    valueobject.VolumeFromMass(massKg, densityKgL),
		UnitCost:   unitCost,
		EntryDate:  entryDate,
	}, nil
}

// Debit reduces the lot's mass by massDelta and re-derives the volume from
// the unchanged density, so mass and volume shrink proportionally.
// The lot is left untouched when the debit exceeds the on-hand mass.
func (l *Lot) Debit(massDelta decimal.Decimal) error {
	if massDelta.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Debit quantity must be positive")
	}
	if massDelta.GreaterThan(l.MassKg) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Debit exceeds on-hand mass for lot "+l.Name)
	}

	l.MassKg = l.MassKg.Sub(massDelta)
	l.VolumeL = valueobject.VolumeFromMass(l.MassKg, l.DensityKgL)
	l.UpdatedAt = time.Now()

	return nil
}

// DebitVolume reduces the lot by a volume in liters, debiting the equivalent
// mass at the lot's density. Used when production consumes ingredients by
// volume.
func (l *Lot) DebitVolume(volumeDelta decimal.Decimal) error {
	if volumeDelta.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Debit volume must be positive")
	}
	if volumeDelta.GreaterThan(l.VolumeL) {
		return shared.NewDomainError("INSUFFICIENT_STOCK", "Debit exceeds on-hand volume for lot "+l.Name)
	}

	massDelta := valueobject.MassFromVolume(volumeDelta, l.DensityKgL)
	l.MassKg = l.MassKg.Sub(massDelta)
	l.VolumeL = l.VolumeL.Sub(volumeDelta)
	l.UpdatedAt = time.Now()

	return nil
}

// Update replaces the lot's fields and recomputes the volume from the new
// mass/density pair.
func (l *Lot) Update(name string, massKg, densityKgL, unitCost decimal.Decimal, entryDate valueobject.EntryDate) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Lot name cannot be empty")
	}
	if massKg.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Lot mass cannot be negative")
	}
	if densityKgL.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Lot density must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Lot cost cannot be negative")
	}

	l.Name = strings.TrimSpace(name)
	l.MassKg = massKg
	l.DensityKgL = densityKgL
	l.VolumeL = valueobject.VolumeFromMass(massKg, densityKgL)
	l.UnitCost = unitCost
	l.EntryDate = entryDate
	l.UpdatedAt = time.Now()

	return nil
}
