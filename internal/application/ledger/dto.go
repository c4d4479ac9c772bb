package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storetrack/backend/internal/domain/ledger"
)

// UpdateStoreProductRequest represents a request to replace a ledger
// row's price and on-hand quantity
type UpdateStoreProductRequest struct {
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity" validate:"gte=0"`
}

// RecordDispatchRequest represents a request to sell stock out of a
// ledger row. Quantity is validated by the domain after the caller's
// authority over the row has been established.
type RecordDispatchRequest struct {
	StoreProductID uuid.UUID        `json:"store_product_id" validate:"required"`
	QuantitySold   int              `json:"quantity_sold"`
	Discount       *decimal.Decimal `json:"discount"`
}

// DispatchReportRequest represents a request for a store's dispatch
// report. The date range is optional; when both dates are empty the
// report covers the store's whole history. Dates use the 2006-01-02
// layout. StoreID is only honoured for admin callers; store managers
// always report on their own store.
type DispatchReportRequest struct {
	StoreID   *uuid.UUID `json:"store_id"`
	StartDate string     `json:"start_date"`
	EndDate   string     `json:"end_date"`
}

// StoreProductListFilter represents filter options for ledger listings
type StoreProductListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" validate:"omitempty,oneof=asc desc"`
}

// StoreProductResponse represents a ledger row in API responses
type StoreProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	StoreID   uuid.UUID       `json:"store_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Version   int             `json:"version"`
}

// DispatchResponse represents a dispatch record in API responses
type DispatchResponse struct {
	ID             uuid.UUID       `json:"id"`
	StoreProductID uuid.UUID       `json:"store_product_id"`
	StoreID        uuid.UUID       `json:"store_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Price          decimal.Decimal `json:"price"`
	QuantitySold   int             `json:"quantity_sold"`
	Discount       decimal.Decimal `json:"discount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	SoldBy         *uuid.UUID      `json:"sold_by"`
	Timestamp      time.Time       `json:"timestamp"`
}

// DispatchReportResponse represents a store's dispatch report.
// Totals are zero when no dispatches fall in the range.
type DispatchReportResponse struct {
	StoreID       uuid.UUID          `json:"store_id"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	Dispatches    []DispatchResponse `json:"dispatches"`
	TotalQuantity int64              `json:"total_quantity"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
}

// ToStoreProductResponse converts a domain StoreProduct to StoreProductResponse
func ToStoreProductResponse(sp *ledger.StoreProduct) *StoreProductResponse {
	return &StoreProductResponse{
		ID:        sp.ID,
		StoreID:   sp.StoreID,
		ProductID: sp.ProductID,
		Price:     sp.Price.Amount(),
		Quantity:  sp.Quantity,
		CreatedAt: sp.CreatedAt,
		UpdatedAt: sp.UpdatedAt,
		Version:   sp.Version,
	}
}

// ToDispatchResponse converts a domain Dispatch to DispatchResponse
func ToDispatchResponse(d *ledger.Dispatch) DispatchResponse {
	return DispatchResponse{
		ID:             d.ID,
		StoreProductID: d.StoreProductID,
		StoreID:        d.StoreID,
		ProductID:      d.ProductID,
		Price:          d.Price.Amount(),
		QuantitySold:   d.QuantitySold,
		Discount:       d.Discount.Amount(),
		TotalAmount:    d.TotalAmount.Amount(),
		SoldBy:         d.SoldBy,
		Timestamp:      d.Timestamp,
	}
}
