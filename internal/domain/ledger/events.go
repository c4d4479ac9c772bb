package ledger

import (
	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeStoreProduct = "StoreProduct"

// Event type constants
const (
	EventTypeStoreProductProvisioned = "StoreProductProvisioned"
	EventTypeStoreProductUpdated     = "StoreProductUpdated"
	EventTypeDispatchRecorded        = "DispatchRecorded"
)

// StoreProductProvisionedEvent is published when a ledger row is created
type StoreProductProvisionedEvent struct {
	shared.BaseDomainEvent
	StoreProductID uuid.UUID `json:"store_product_id"`
	StoreID        uuid.UUID `json:"store_id"`
	ProductID      uuid.UUID `json:"product_id"`
}

// NewStoreProductProvisionedEvent creates a new StoreProductProvisionedEvent
func NewStoreProductProvisionedEvent(sp *StoreProduct) *StoreProductProvisionedEvent {
	return &StoreProductProvisionedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreProductProvisioned, AggregateTypeStoreProduct, sp.ID),
		StoreProductID:  sp.ID,
		StoreID:         sp.StoreID,
		ProductID:       sp.ProductID,
	}
}

// StoreProductUpdatedEvent is published when a row's price or quantity changes
type StoreProductUpdatedEvent struct {
	shared.BaseDomainEvent
	StoreProductID uuid.UUID `json:"store_product_id"`
	StoreID        uuid.UUID `json:"store_id"`
	ProductID      uuid.UUID `json:"product_id"`
	Price          string    `json:"price"`
	Quantity       int       `json:"quantity"`
}

// NewStoreProductUpdatedEvent creates a new StoreProductUpdatedEvent
func NewStoreProductUpdatedEvent(sp *StoreProduct) *StoreProductUpdatedEvent {
	return &StoreProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreProductUpdated, AggregateTypeStoreProduct, sp.ID),
		StoreProductID:  sp.ID,
		StoreID:         sp.StoreID,
		ProductID:       sp.ProductID,
		Price:           sp.Price.StringFixed(2),
		Quantity:        sp.Quantity,
	}
}

// DispatchRecordedEvent is published when a sale is recorded
type DispatchRecordedEvent struct {
	shared.BaseDomainEvent
	DispatchID     uuid.UUID `json:"dispatch_id"`
	StoreProductID uuid.UUID `json:"store_product_id"`
	StoreID        uuid.UUID `json:"store_id"`
	ProductID      uuid.UUID `json:"product_id"`
	QuantitySold   int       `json:"quantity_sold"`
	TotalAmount    string    `json:"total_amount"`
	RemainingStock int       `json:"remaining_stock"`
}

// NewDispatchRecordedEvent creates a new DispatchRecordedEvent
func NewDispatchRecordedEvent(sp *StoreProduct, dispatch *Dispatch) *DispatchRecordedEvent {
	return &DispatchRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDispatchRecorded, AggregateTypeStoreProduct, sp.ID),
		DispatchID:      dispatch.ID,
		StoreProductID:  sp.ID,
		StoreID:         sp.StoreID,
		ProductID:       sp.ProductID,
		QuantitySold:    dispatch.QuantitySold,
		TotalAmount:     dispatch.TotalAmount.StringFixed(2),
		RemainingStock:  sp.Quantity,
	}
}
