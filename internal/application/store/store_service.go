package store

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

var validate = validator.New()

func requireAdmin(principal identity.Principal) error {
	if !principal.IsAdmin() {
		return shared.ErrUnauthorized
	}
	return nil
}

// StoreService handles store-related business operations. Stores are
// admin-managed reference data; creating one triggers ledger backfill
// through the published StoreCreated event.
type StoreService struct {
	storeRepo store.StoreRepository
	userRepo  identity.UserRepository
	scope     TransactionScope
	publisher shared.EventPublisher
}

// NewStoreService creates a new StoreService
func NewStoreService(
	storeRepo store.StoreRepository,
	userRepo identity.UserRepository,
	scope TransactionScope,
	publisher shared.EventPublisher,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		scope:     scope,
		publisher: publisher,
	}
}

// Create creates a new store for the given owner
func (s *StoreService) Create(ctx context.Context, principal identity.Principal, req CreateStoreRequest) (*StoreResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	if _, err := s.userRepo.FindByID(ctx, req.OwnerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_OWNER", "Owner not found")
		}
		return nil, err
	}

	st, err := store.NewStore(req.Name, req.Address, req.OwnerID)
	if err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	events := st.GetDomainEvents()
	st.ClearDomainEvents()
	if err := s.publisher.Publish(ctx, events...); err != nil {
		return nil, err
	}

	return ToStoreResponse(st), nil
}

// GetByID retrieves a store. Admins see any store; a store manager
// sees only their own.
func (s *StoreService) GetByID(ctx context.Context, principal identity.Principal, id uuid.UUID) (*StoreResponse, error) {
	if principal.Kind() == identity.KindUnauthorized {
		return nil, shared.ErrUnauthorized
	}
	if !principal.CanManageStore(id) {
		return nil, shared.ErrNotStoreOwner
	}

	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToStoreResponse(st), nil
}

// List retrieves all stores
func (s *StoreService) List(ctx context.Context, principal identity.Principal, filter StoreListFilter) (shared.Paginated[StoreResponse], error) {
	var empty shared.Paginated[StoreResponse]

	if err := requireAdmin(principal); err != nil {
		return empty, err
	}
	if err := validate.Struct(filter); err != nil {
		return empty, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	domainFilter := shared.DefaultFilter()
	if filter.Search != "" {
		domainFilter.Search = filter.Search
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
		if filter.OrderDir != "" {
			domainFilter.OrderDir = filter.OrderDir
		}
	}

	stores, err := s.storeRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	total, err := s.storeRepo.Count(ctx, domainFilter)
	if err != nil {
		return empty, err
	}

	responses := make([]StoreResponse, len(stores))
	for i, st := range stores {
		responses[i] = *ToStoreResponse(&st)
	}

	return shared.NewPaginated(responses, total, domainFilter.Page, domainFilter.PageSize), nil
}

// ListByOwner retrieves the stores a user owns, oldest first
func (s *StoreService) ListByOwner(ctx context.Context, principal identity.Principal, ownerID uuid.UUID) ([]StoreResponse, error) {
	if principal.Kind() == identity.KindUnauthorized {
		return nil, shared.ErrUnauthorized
	}
	if !principal.IsAdmin() && principal.UserID() != ownerID {
		return nil, shared.ErrUnauthorized
	}

	stores, err := s.storeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]StoreResponse, len(stores))
	for i, st := range stores {
		responses[i] = *ToStoreResponse(&st)
	}
	return responses, nil
}

// Update updates a store's name and address
func (s *StoreService) Update(ctx context.Context, principal identity.Principal, id uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := st.Update(req.Name, req.Address); err != nil {
		return nil, err
	}

	if err := s.storeRepo.Save(ctx, st); err != nil {
		return nil, err
	}

	return ToStoreResponse(st), nil
}

// Delete removes a store together with its ledger rows and dispatch
// history, all in one transaction.
func (s *StoreService) Delete(ctx context.Context, principal identity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	st, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.DispatchRepo().DeleteByStore(ctx, id); err != nil {
			return err
		}
		if err := repos.StoreProductRepo().DeleteByStore(ctx, id); err != nil {
			return err
		}
		return repos.StoreRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	return s.publisher.Publish(ctx, store.NewStoreDeletedEvent(st))
}
