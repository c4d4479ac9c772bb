package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
)

// GormStoreProductRepository implements StoreProductRepository using GORM
type GormStoreProductRepository struct {
	db *gorm.DB
}

// NewGormStoreProductRepository creates a new GormStoreProductRepository
func NewGormStoreProductRepository(db *gorm.DB) *GormStoreProductRepository {
	return &GormStoreProductRepository{db: db}
}

// FindByID finds a ledger row by its ID
func (r *GormStoreProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.StoreProduct, error) {
	var sp ledger.StoreProduct
	if err := r.db.WithContext(ctx).First(&sp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sp, nil
}

// FindByIDForUpdate finds a ledger row by ID while holding a row lock.
// Only meaningful inside a transaction scope.
func (r *GormStoreProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.StoreProduct, error) {
	var sp ledger.StoreProduct
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&sp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sp, nil
}

// FindByStoreAndProduct finds the row for a (store, product) pair
func (r *GormStoreProductRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (*ledger.StoreProduct, error) {
	var sp ledger.StoreProduct
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		First(&sp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sp, nil
}

// FindByStore finds all rows of a store matching the filter
func (r *GormStoreProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]ledger.StoreProduct, error) {
	var rows []ledger.StoreProduct
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&ledger.StoreProduct{}).Where("store_id = ?", storeID),
		filter,
	)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Save creates or updates a ledger row
func (r *GormStoreProductRepository) Save(ctx context.Context, sp *ledger.StoreProduct) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

// SaveWithLock saves with optimistic locking (checks version)
func (r *GormStoreProductRepository) SaveWithLock(ctx context.Context, sp *ledger.StoreProduct) error {
	result := r.db.WithContext(ctx).
		Model(sp).
		Where("id = ? AND version = ?", sp.ID, sp.Version-1).
		Updates(map[string]interface{}{
			"price":      sp.Price,
			"quantity":   sp.Quantity,
			"version":    sp.Version,
			"updated_at": sp.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// CreateBatch inserts many rows at once, used by provisioning
func (r *GormStoreProductRepository) CreateBatch(ctx context.Context, rows []ledger.StoreProduct) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// ExistsByStoreAndProduct checks if a row exists for the pair
func (r *GormStoreProductRepository) ExistsByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.StoreProduct{}).
		Where("store_id = ? AND product_id = ?", storeID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteByProduct removes every row for a product
func (r *GormStoreProductRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ledger.StoreProduct{}, "product_id = ?", productID).Error
}

// DeleteByStore removes every row for a store
func (r *GormStoreProductRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&ledger.StoreProduct{}, "store_id = ?", storeID).Error
}

// CountByStore counts rows of a store matching the filter
func (r *GormStoreProductRepository) CountByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.StoreProduct{}).
		Where("store_id = ?", storeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies ordering and pagination to the query
func (r *GormStoreProductRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StoreProductSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// Ensure GormStoreProductRepository implements StoreProductRepository
var _ ledger.StoreProductRepository = (*GormStoreProductRepository)(nil)
