package store

import (
	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeStore = "Store"

// Event type constants
const (
	EventTypeStoreCreated = "StoreCreated"
	EventTypeStoreDeleted = "StoreDeleted"
)

// StoreCreatedEvent is published when a new store is created.
// The ledger reacts to it by backfilling a row for every product.
type StoreCreatedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"owner_id"`
}

// NewStoreCreatedEvent creates a new StoreCreatedEvent
func NewStoreCreatedEvent(store *Store) *StoreCreatedEvent {
	return &StoreCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreCreated, AggregateTypeStore, store.ID),
		StoreID:         store.ID,
		Name:            store.Name,
		OwnerID:         store.OwnerID,
	}
}

// StoreDeletedEvent is published when a store is deleted
type StoreDeletedEvent struct {
	shared.BaseDomainEvent
	StoreID uuid.UUID `json:"store_id"`
	Name    string    `json:"name"`
}

// NewStoreDeletedEvent creates a new StoreDeletedEvent
func NewStoreDeletedEvent(store *Store) *StoreDeletedEvent {
	return &StoreDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStoreDeleted, AggregateTypeStore, store.ID),
		StoreID:         store.ID,
		Name:            store.Name,
	}
}
