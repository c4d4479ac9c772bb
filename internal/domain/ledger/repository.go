package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storetrack/backend/internal/domain/shared"
)

// StoreProductRepository defines the interface for ledger row persistence
type StoreProductRepository interface {
	// FindByID finds a row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StoreProduct, error)

	// FindByIDForUpdate finds a row by ID while holding a row lock
	// for the duration of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*StoreProduct, error)

	// FindByStoreAndProduct finds the row for a (store, product) pair
	FindByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (*StoreProduct, error)

	// FindByStore finds all rows of a store matching the filter
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]StoreProduct, error)

	// Save creates or updates a row
	Save(ctx context.Context, sp *StoreProduct) error

	// SaveWithLock updates a row with an optimistic concurrency check.
	// Returns CONCURRENCY_CONFLICT if the stored version differs.
	SaveWithLock(ctx context.Context, sp *StoreProduct) error

	// CreateBatch inserts many rows at once, used by provisioning
	CreateBatch(ctx context.Context, rows []StoreProduct) error

	// ExistsByStoreAndProduct checks whether a row exists for the pair
	ExistsByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (bool, error)

	// DeleteByProduct removes every row for a product
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error

	// DeleteByStore removes every row for a store
	DeleteByStore(ctx context.Context, storeID uuid.UUID) error

	// CountByStore counts rows of a store matching the filter
	CountByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error)
}

// DispatchTotals aggregates a set of dispatches for reporting
type DispatchTotals struct {
	QuantitySold int64
	TotalAmount  decimal.Decimal
}

// DispatchRepository defines the interface for dispatch persistence.
// Dispatches are append-only: there is no update or single delete.
type DispatchRepository interface {
	// Create inserts a dispatch record
	Create(ctx context.Context, dispatch *Dispatch) error

	// FindByStore finds a store's dispatches within the inclusive
	// date range [start, end]. A zero bound leaves that side of the
	// range open.
	FindByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time, filter shared.Filter) ([]Dispatch, error)

	// TotalsByStore sums quantity sold and total amount over the
	// same range. An empty range yields zero totals.
	TotalsByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time) (DispatchTotals, error)

	// NullifySoldBy clears the seller reference on a user's dispatches,
	// used when an account is deleted
	NullifySoldBy(ctx context.Context, userID uuid.UUID) error

	// DeleteByProduct removes every dispatch for a product
	DeleteByProduct(ctx context.Context, productID uuid.UUID) error

	// DeleteByStore removes every dispatch for a store
	DeleteByStore(ctx context.Context, storeID uuid.UUID) error
}
