package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/shared/valueobject"
)

// Dispatch is an append-only record of a sale out of a ledger row.
// It snapshots the unit price at the moment of sale; dispatches are
// never updated after creation.
type Dispatch struct {
	shared.BaseEntity
	StoreProductID uuid.UUID         `gorm:"type:uuid;not null;index"`
	StoreID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Price          valueobject.Money `gorm:"type:decimal(12,2);not null"`
	QuantitySold   int               `gorm:"not null"`
	Discount       valueobject.Money `gorm:"type:decimal(12,2);not null"`
	TotalAmount    valueobject.Money `gorm:"type:decimal(12,2);not null"`
	SoldBy         *uuid.UUID        `gorm:"type:uuid;index"`
	Timestamp      time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Dispatch) TableName() string {
	return "dispatches"
}

// NewDispatch builds a dispatch record with its total computed as
// price times quantity minus discount. The construction is pure:
// it touches no stock and performs no I/O.
func NewDispatch(storeProductID, storeID, productID uuid.UUID, price valueobject.Money, quantity int, discount valueobject.Money, soldBy *uuid.UUID) (*Dispatch, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity sold must be greater than zero")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	gross := price.MultiplyByInt(int64(quantity))
	if exceeds, err := gross.LessThan(discount); err != nil {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", err.Error())
	} else if exceeds {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed the gross amount")
	}

	total, err := gross.Subtract(discount)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", err.Error())
	}

	return &Dispatch{
		BaseEntity:     shared.NewBaseEntity(),
		StoreProductID: storeProductID,
		StoreID:        storeID,
		ProductID:      productID,
		Price:          price,
		QuantitySold:   quantity,
		Discount:       discount,
		TotalAmount:    total,
		SoldBy:         soldBy,
		Timestamp:      time.Now(),
	}, nil
}
