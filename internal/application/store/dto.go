package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/store"
)

// CreateStoreRequest represents a request to create a new store
type CreateStoreRequest struct {
	Name    string    `json:"name" validate:"required,min=1,max=150"`
	Address string    `json:"address" validate:"max=2000"`
	OwnerID uuid.UUID `json:"owner_id" validate:"required"`
}

// UpdateStoreRequest represents a request to update a store
type UpdateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=150"`
	Address string `json:"address" validate:"max=2000"`
}

// StoreListFilter represents filter options for store listings
type StoreListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" validate:"omitempty,oneof=asc desc"`
}

// StoreResponse represents a store in API responses
type StoreResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// ToStoreResponse converts a domain Store to StoreResponse
func ToStoreResponse(s *store.Store) *StoreResponse {
	return &StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Version:   s.Version,
	}
}
