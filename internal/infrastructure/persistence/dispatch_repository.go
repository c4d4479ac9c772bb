package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
)

// GormDispatchRepository implements DispatchRepository using GORM.
// Dispatches are append-only; the only mutation is clearing the
// seller reference when an account is deleted.
type GormDispatchRepository struct {
	db *gorm.DB
}

// NewGormDispatchRepository creates a new GormDispatchRepository
func NewGormDispatchRepository(db *gorm.DB) *GormDispatchRepository {
	return &GormDispatchRepository{db: db}
}

// Create inserts a dispatch record
func (r *GormDispatchRepository) Create(ctx context.Context, dispatch *ledger.Dispatch) error {
	return r.db.WithContext(ctx).Create(dispatch).Error
}

// FindByStore finds a store's dispatches within [start, end]. A zero
// bound leaves that side of the range open.
func (r *GormDispatchRepository) FindByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time, filter shared.Filter) ([]ledger.Dispatch, error) {
	var dispatches []ledger.Dispatch
	query := r.applyRange(r.db.WithContext(ctx).Model(&ledger.Dispatch{}), storeID, start, end)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DispatchSortFields, "timestamp")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&dispatches).Error; err != nil {
		return nil, err
	}
	return dispatches, nil
}

// TotalsByStore sums quantity sold and total amount over [start, end].
// Zero bounds are open, as in FindByStore.
func (r *GormDispatchRepository) TotalsByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time) (ledger.DispatchTotals, error) {
	var result struct {
		QuantitySold int64
		TotalAmount  decimal.Decimal
	}
	if err := r.applyRange(r.db.WithContext(ctx).Model(&ledger.Dispatch{}), storeID, start, end).
		Select("COALESCE(SUM(quantity_sold), 0) as quantity_sold, COALESCE(SUM(total_amount), 0) as total_amount").
		Scan(&result).Error; err != nil {
		return ledger.DispatchTotals{}, err
	}
	return ledger.DispatchTotals{
		QuantitySold: result.QuantitySold,
		TotalAmount:  result.TotalAmount,
	}, nil
}

// applyRange scopes the query to a store and the optional time range
func (r *GormDispatchRepository) applyRange(query *gorm.DB, storeID uuid.UUID, start, end time.Time) *gorm.DB {
	query = query.Where("store_id = ?", storeID)
	if !start.IsZero() {
		query = query.Where("timestamp >= ?", start)
	}
	if !end.IsZero() {
		query = query.Where("timestamp <= ?", end)
	}
	return query
}

// NullifySoldBy clears the seller reference on a user's dispatches
func (r *GormDispatchRepository) NullifySoldBy(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&ledger.Dispatch{}).
		Where("sold_by = ?", userID).
		Update("sold_by", nil).Error
}

// DeleteByProduct removes every dispatch for a product
func (r *GormDispatchRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ledger.Dispatch{}, "product_id = ?", productID).Error
}

// DeleteByStore removes every dispatch for a store
func (r *GormDispatchRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ledger.Dispatch{}, "store_id = ?", storeID).Error
}

// Ensure GormDispatchRepository implements DispatchRepository
var _ ledger.DispatchRepository = (*GormDispatchRepository)(nil)
