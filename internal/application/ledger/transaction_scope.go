package ledger

import (
	"context"

	"github.com/storetrack/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the ledger
// repositories. When a function is executed within a transaction
// scope, all repository operations are part of the same database
// transaction and commit or roll back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories
// within a transaction. Both repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// StoreProductRepo returns the ledger row repository scoped to the current transaction
	StoreProductRepo() ledger.StoreProductRepository
	// DispatchRepo returns the dispatch repository scoped to the current transaction
	DispatchRepo() ledger.DispatchRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support
// is not required.
type NoOpTransactionScope struct {
	storeProductRepo ledger.StoreProductRepository
	dispatchRepo     ledger.DispatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	storeProductRepo ledger.StoreProductRepository,
	dispatchRepo ledger.DispatchRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		storeProductRepo: storeProductRepo,
		dispatchRepo:     dispatchRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
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
