package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock of catalog.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) HasProducts(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ catalog.CategoryRepository = (*MockCategoryRepository)(nil)

// MockProductRepository is a mock of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ catalog.ProductRepository = (*MockProductRepository)(nil)

// MockStoreProductRepository is a mock of ledger.StoreProductRepository
type MockStoreProductRepository struct {
	mock.Mock
}

func (m *MockStoreProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.StoreProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StoreProduct), args.Error(1)
}

func (m *MockStoreProductRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ledger.StoreProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StoreProduct), args.Error(1)
}

func (m *MockStoreProductRepository) FindByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (*ledger.StoreProduct, error) {
	args := m.Called(ctx, storeID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StoreProduct), args.Error(1)
}

func (m *MockStoreProductRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]ledger.StoreProduct, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.StoreProduct), args.Error(1)
}

func (m *MockStoreProductRepository) Save(ctx context.Context, sp *ledger.StoreProduct) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockStoreProductRepository) SaveWithLock(ctx context.Context, sp *ledger.StoreProduct) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockStoreProductRepository) CreateBatch(ctx context.Context, rows []ledger.StoreProduct) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockStoreProductRepository) ExistsByStoreAndProduct(ctx context.Context, storeID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, storeID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreProductRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockStoreProductRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

func (m *MockStoreProductRepository) CountByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ ledger.StoreProductRepository = (*MockStoreProductRepository)(nil)

// MockDispatchRepository is a mock of ledger.DispatchRepository
type MockDispatchRepository struct {
	mock.Mock
}

func (m *MockDispatchRepository) Create(ctx context.Context, dispatch *ledger.Dispatch) error {
	args := m.Called(ctx, dispatch)
	return args.Error(0)
}

func (m *MockDispatchRepository) FindByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time, filter shared.Filter) ([]ledger.Dispatch, error) {
	args := m.Called(ctx, storeID, start, end, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Dispatch), args.Error(1)
}

func (m *MockDispatchRepository) TotalsByStore(ctx context.Context, storeID uuid.UUID, start, end time.Time) (ledger.DispatchTotals, error) {
	args := m.Called(ctx, storeID, start, end)
	return args.Get(0).(ledger.DispatchTotals), args.Error(1)
}

func (m *MockDispatchRepository) NullifySoldBy(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockDispatchRepository) DeleteByProduct(ctx context.Context, productID uuid.UUID) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockDispatchRepository) DeleteByStore(ctx context.Context, storeID uuid.UUID) error {
	args := m.Called(ctx, storeID)
	return args.Error(0)
}

var _ ledger.DispatchRepository = (*MockDispatchRepository)(nil)

// MockEventPublisher is a mock of shared.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

var _ shared.EventPublisher = (*MockEventPublisher)(nil)
