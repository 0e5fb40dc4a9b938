package sales

import (
	"github.com/chemstock/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents one sale of a finished batch to a client, recorded at the
// moment the batch is debited.
type Sale struct {
	shared.BaseEntity
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityKg decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SaleValue  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale record. Stock availability is checked against the
// batch by the caller; this constructor only validates the record itself.
func NewSale(clientID, batchID uuid.UUID, quantityKg, saleValue decimal.Decimal) (*Sale, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client is required")
	}
	if batchID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product is required")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale quantity must be positive")
	}
	if saleValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sale value cannot be negative")
	}

	return &Sale{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		BatchID:    batchID,
		QuantityKg: quantityKg,
		SaleValue:  saleValue,
	}, nil
}
