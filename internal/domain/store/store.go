package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// Store represents a retail location managed by a single owner.
// A store owner may manage several stores; the ledger keeps one
// row per store for every catalog product.
type Store struct {
	shared.BaseAggregateRoot
	Name    string    `gorm:"type:varchar(150);not null"`
	Address string    `gorm:"type:text"`
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store owned by the given user
func NewStore(name, address string, ownerID uuid.UUID) (*Store, error) {
	if err := validateStoreName(name); err != nil {
		return nil, err
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Store owner is required")
	}

	store := &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Address:           address,
		OwnerID:           ownerID,
	}

	store.AddDomainEvent(NewStoreCreatedEvent(store))

	return store, nil
}

// Update updates the store's name and address
func (s *Store) Update(name, address string) error {
	if err := validateStoreName(name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.Address = address
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// TransferOwnership assigns the store to a different owner
func (s *Store) TransferOwnership(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return shared.NewDomainError("INVALID_OWNER", "Store owner is required")
	}

	s.OwnerID = ownerID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsOwnedBy reports whether the given user owns the store
func (s *Store) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}

func validateStoreName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Store name is required")
	}
	if len(trimmed) > 150 {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot exceed 150 characters")
	}
	return nil
}
