package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/shared/valueobject"
)

// StoreProduct is a ledger row tracking the price and on-hand
// quantity of one product at one store. Exactly one row exists
// per (store, product) pair; rows are provisioned automatically
// when products or stores are created.
type StoreProduct struct {
	shared.BaseAggregateRoot
	StoreID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_store_product"`
	ProductID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_store_product"`
	Price     valueobject.Money `gorm:"type:decimal(12,2);not null"`
	Quantity  int               `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StoreProduct) TableName() string {
	return "store_products"
}

// NewStoreProduct creates a ledger row for a (store, product) pair
func NewStoreProduct(storeID, productID uuid.UUID, price valueobject.Money, quantity int) (*StoreProduct, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	sp := &StoreProduct{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		ProductID:         productID,
		Price:             price,
		Quantity:          quantity,
	}

	sp.AddDomainEvent(NewStoreProductProvisionedEvent(sp))

	return sp, nil
}

// SetPriceAndQuantity replaces the row's price and on-hand quantity
func (sp *StoreProduct) SetPriceAndQuantity(price valueobject.Money, quantity int) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if quantity < 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}

	sp.Price = price
	sp.Quantity = quantity
	sp.UpdatedAt = time.Now()
	sp.IncrementVersion()

	sp.AddDomainEvent(NewStoreProductUpdatedEvent(sp))

	return nil
}

// RecordDispatch sells the given quantity out of this row's stock.
// The dispatch total is computed from the price at the moment of
// sale, so later price changes never rewrite history. Stock is
// decremented only when every check passes.
func (sp *StoreProduct) RecordDispatch(quantity int, discount valueobject.Money, soldBy *uuid.UUID) (*Dispatch, error) {
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity sold must be greater than zero")
	}
	if quantity > sp.Quantity {
		return nil, shared.ErrInsufficientStock
	}

	dispatch, err := NewDispatch(sp.ID, sp.StoreID, sp.ProductID, sp.Price, quantity, discount, soldBy)
	if err != nil {
		return nil, err
	}

	sp.Quantity -= quantity
	sp.UpdatedAt = time.Now()
	sp.IncrementVersion()

	sp.AddDomainEvent(NewDispatchRecordedEvent(sp, dispatch))

	return dispatch, nil
}
