package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// MockStoreRepository is a mock of store.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindAll(ctx context.Context, filter shared.Filter) ([]store.Store, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *MockStoreRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]store.Store, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Store), args.Error(1)
}

func (m *MockStoreRepository) FirstByOwner(ctx context.Context, ownerID uuid.UUID) (*store.Store, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

func (m *MockStoreRepository) Save(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStoreRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

var _ store.StoreRepository = (*MockStoreRepository)(nil)

// MockUserRepository is a mock of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

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
