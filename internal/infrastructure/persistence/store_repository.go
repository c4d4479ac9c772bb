package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// GormStoreRepository implements StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by its ID
func (r *GormStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	var s store.Store
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds all stores matching the filter
func (r *GormStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Store, error) {
	var stores []store.Store
	query := r.applyFilter(r.db.WithContext(ctx).Model(&store.Store{}), filter)

	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindByOwner finds all stores owned by a user, oldest first
func (r *GormStoreRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]store.Store, error) {
	var stores []store.Store
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FirstByOwner finds the user's oldest store
func (r *GormStoreRepository) FirstByOwner(ctx context.Context, ownerID uuid.UUID) (*store.Store, error) {
	var s store.Store
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, s *store.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete deletes a store
func (r *GormStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&store.Store{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stores matching the filter
func (r *GormStoreRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&store.Store{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies search, ordering and pagination to the query
func (r *GormStoreRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StoreSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

// applySearch applies the search term without pagination
func (r *GormStoreRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR address ILIKE ?", searchPattern, searchPattern)
	}
	return query
}

// Ensure GormStoreRepository implements StoreRepository
var _ store.StoreRepository = (*GormStoreRepository)(nil)
