package persistence

import (
	"context"

	"gorm.io/gorm"

	appcatalog "github.com/storetrack/backend/internal/application/catalog"
	appidentity "github.com/storetrack/backend/internal/application/identity"
	appledger "github.com/storetrack/backend/internal/application/ledger"
	appstore "github.com/storetrack/backend/internal/application/store"
	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/ledger"
	"github.com/storetrack/backend/internal/domain/store"
)

// GormLedgerTransactionScope implements the ledger TransactionScope
// using GORM transactions.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope.
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormLedgerRepositories{tx: tx})
	})
}

type gormLedgerRepositories struct {
	tx *gorm.DB
}

// StoreProductRepo returns the ledger row repository scoped to the current transaction.
func (r *gormLedgerRepositories) StoreProductRepo() ledger.StoreProductRepository {
	return NewGormStoreProductRepository(r.tx)
}

// DispatchRepo returns the dispatch repository scoped to the current transaction.
func (r *gormLedgerRepositories) DispatchRepo() ledger.DispatchRepository {
	return NewGormDispatchRepository(r.tx)
}

// GormCatalogTransactionScope implements the catalog TransactionScope
// using GORM transactions. It carries the repositories a product
// delete cascade touches.
type GormCatalogTransactionScope struct {
	db *gorm.DB
}

// NewGormCatalogTransactionScope creates a new GormCatalogTransactionScope.
func NewGormCatalogTransactionScope(db *gorm.DB) *GormCatalogTransactionScope {
	return &GormCatalogTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormCatalogTransactionScope) Execute(ctx context.Context, fn func(repos appcatalog.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCatalogRepositories{tx: tx})
	})
}

type gormCatalogRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormCatalogRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// StoreProductRepo returns the ledger row repository scoped to the current transaction.
func (r *gormCatalogRepositories) StoreProductRepo() ledger.StoreProductRepository {
	return NewGormStoreProductRepository(r.tx)
}

// DispatchRepo returns the dispatch repository scoped to the current transaction.
func (r *gormCatalogRepositories) DispatchRepo() ledger.DispatchRepository {
	return NewGormDispatchRepository(r.tx)
}

// GormStoreTransactionScope implements the store TransactionScope
// using GORM transactions. It carries the repositories a store
// delete cascade touches.
type GormStoreTransactionScope struct {
	db *gorm.DB
}

// NewGormStoreTransactionScope creates a new GormStoreTransactionScope.
func NewGormStoreTransactionScope(db *gorm.DB) *GormStoreTransactionScope {
	return &GormStoreTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormStoreTransactionScope) Execute(ctx context.Context, fn func(repos appstore.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStoreRepositories{tx: tx})
	})
}

type gormStoreRepositories struct {
	tx *gorm.DB
}

// StoreRepo returns the store repository scoped to the current transaction.
func (r *gormStoreRepositories) StoreRepo() store.StoreRepository {
	return NewGormStoreRepository(r.tx)
}

// StoreProductRepo returns the ledger row repository scoped to the current transaction.
func (r *gormStoreRepositories) StoreProductRepo() ledger.StoreProductRepository {
	return NewGormStoreProductRepository(r.tx)
}

// DispatchRepo returns the dispatch repository scoped to the current transaction.
func (r *gormStoreRepositories) DispatchRepo() ledger.DispatchRepository {
	return NewGormDispatchRepository(r.tx)
}

// GormIdentityTransactionScope implements the identity TransactionScope
// using GORM transactions. It carries the repositories a user deletion
// touches.
type GormIdentityTransactionScope struct {
	db *gorm.DB
}

// NewGormIdentityTransactionScope creates a new GormIdentityTransactionScope.
func NewGormIdentityTransactionScope(db *gorm.DB) *GormIdentityTransactionScope {
	return &GormIdentityTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormIdentityTransactionScope) Execute(ctx context.Context, fn func(repos appidentity.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormIdentityRepositories{tx: tx})
	})
}

type gormIdentityRepositories struct {
	tx *gorm.DB
}

// UserRepo returns the user repository scoped to the current transaction.
func (r *gormIdentityRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// DispatchRepo returns the dispatch repository scoped to the current transaction.
func (r *gormIdentityRepositories) DispatchRepo() ledger.DispatchRepository {
	return NewGormDispatchRepository(r.tx)
}

// Ensure the scopes implement their application interfaces
var _ appledger.TransactionScope = (*GormLedgerTransactionScope)(nil)
var _ appledger.TransactionalRepositories = (*gormLedgerRepositories)(nil)
var _ appcatalog.TransactionScope = (*GormCatalogTransactionScope)(nil)
var _ appcatalog.TransactionalRepositories = (*gormCatalogRepositories)(nil)
var _ appstore.TransactionScope = (*GormStoreTransactionScope)(nil)
var _ appstore.TransactionalRepositories = (*gormStoreRepositories)(nil)
var _ appidentity.TransactionScope = (*GormIdentityTransactionScope)(nil)
var _ appidentity.TransactionalRepositories = (*gormIdentityRepositories)(nil)
