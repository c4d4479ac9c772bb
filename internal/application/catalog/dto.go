package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a new category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=200"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Description string    `json:"description" validate:"max=2000"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	CategoryID  *uuid.UUID `json:"category_id"`
	Description string     `json:"description" validate:"max=2000"`
}

// ListFilter represents filter options for catalog listings
type ListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" validate:"omitempty,oneof=asc desc"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	CategoryID  uuid.UUID `json:"category_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Version     int       `json:"version"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Version:     c.Version,
	}
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		Version:     p.Version,
	}
}
