package identity

import (
	"context"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/ledger"
)

// TransactionScope provides transactional access to the repositories a
// user deletion touches. The seller reference on past dispatches is
// cleared in the same transaction that removes the account.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories within
// a transaction. Both repositories share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// UserRepo returns the user repository scoped to the current transaction
	UserRepo() identity.UserRepository
	// DispatchRepo returns the dispatch repository scoped to the current transaction
	DispatchRepo() ledger.DispatchRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support
// is not required.
type NoOpTransactionScope struct {
	userRepo     identity.UserRepository
	dispatchRepo ledger.DispatchRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(userRepo identity.UserRepository, dispatchRepo ledger.DispatchRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		userRepo:     userRepo,
		dispatchRepo: dispatchRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// UserRepo returns the user repository.
func (s *NoOpTransactionScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

// DispatchRepo returns the dispatch repository.
func (s *NoOpTransactionScope) DispatchRepo() ledger.DispatchRepository {
	return s.dispatchRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
