package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	// FindByID finds a store by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Store, error)

	// FindAll finds all stores matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Store, error)

	// FindByOwner finds all stores owned by a user, oldest first
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Store, error)

	// FirstByOwner finds the user's oldest store, or NOT_FOUND
	FirstByOwner(ctx context.Context, ownerID uuid.UUID) (*Store, error)

	// Save creates or updates a store
	Save(ctx context.Context, store *Store) error

	// Delete deletes a store
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts stores matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
