package catalog

import (
	"context"

	"github.com/storetrack/backend/internal/domain/catalog"
	"github.com/storetrack/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the repositories a
// catalog cascade touches. Deleting a product removes its dispatches
// and ledger rows in the same transaction as the product itself.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within
// a transaction. All repositories share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// ProductRepo returns the product repository scoped to the current transaction
	ProductRepo() catalog.ProductRepository
	// StoreProductRepo returns the ledger row repository scoped to the current transaction
	StoreProductRepo() ledger.StoreProductRepository
	// DispatchRepo returns the dispatch repository scoped to the current transaction
	DispatchRepo() ledger.DispatchRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support
// is not required.
type NoOpTransactionScope struct {
	productRepo      catalog.ProductRepository
	storeProductRepo ledger.StoreProductRepository
	dispatchRepo     ledger.DispatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	productRepo catalog.ProductRepository,
	storeProductRepo ledger.StoreProductRepository,
	dispatchRepo ledger.DispatchRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		productRepo:      productRepo,
		storeProductRepo: storeProductRepo,
		dispatchRepo:     dispatchRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

// StoreProductRepo returns the ledger row repository.
func (s *NoOpTransactionScope) StoreProductRepo() ledger.StoreProductRepository {
	return s.storeProductRepo
}

// DispatchRepo returns the dispatch repository.
func (s *NoOpTransactionScope) DispatchRepo() ledger.DispatchRepository {
	return s.dispatchRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
