package catalog

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// Product represents a product in the global catalog. Products are
// reference data; store-specific price and quantity live on the
// ledger rows provisioned for every store.
type Product struct {
	shared.BaseAggregateRoot
	Name        string    `gorm:"type:varchar(200);not null"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the given category
func NewProduct(name string, categoryID uuid.UUID, description string) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		CategoryID:        categoryID,
		Description:       description,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's name and description
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetCategory moves the product to a different category
func (p *Product) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}

	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// validateProductName validates the product name.
// Names may contain only letters and spaces.
func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && r != ' ' {
			return shared.NewDomainError("INVALID_NAME", "Product name must contain only letters and spaces")
		}
	}
	return nil
}
