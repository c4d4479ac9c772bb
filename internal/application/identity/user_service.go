package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// UserService handles account administration. All operations require
// admin authority.
type UserService struct {
	userRepo  identity.UserRepository
	storeRepo store.StoreRepository
	scope     TransactionScope
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, storeRepo store.StoreRepository, scope TransactionScope) *UserService {
	return &UserService{
		userRepo:  userRepo,
		storeRepo: storeRepo,
		scope:     scope,
	}
}

func requireAdmin(principal identity.Principal) error {
	if !principal.IsAdmin() {
		return shared.ErrUnauthorized
	}
	return nil
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, principal identity.Principal, req CreateUserRequest) (*UserResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, req.Password, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// GetByID retrieves a user
func (s *UserService) GetByID(ctx context.Context, principal identity.Principal, id uuid.UUID) (*UserResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// List retrieves all users
func (s *UserService) List(ctx context.Context, principal identity.Principal, filter shared.Filter) ([]UserResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = *ToUserResponse(&u)
	}
	return responses, nil
}

// ChangeRole changes a user's role
func (s *UserService) ChangeRole(ctx context.Context, principal identity.Principal, id uuid.UUID, req ChangeRoleRequest) (*UserResponse, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := user.SetRole(identity.Role(req.Role)); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return ToUserResponse(user), nil
}

// Delete removes a user account. Dispatches the user recorded survive
// with their seller reference cleared; a user who still owns stores
// cannot be deleted.
func (s *UserService) Delete(ctx context.Context, principal identity.Principal, id uuid.UUID) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}

	owned, err := s.storeRepo.FindByOwner(ctx, id)
	if err != nil {
		return err
	}
	if len(owned) > 0 {
		return shared.NewDomainError("HAS_STORES", "Cannot delete a user who still owns stores")
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.DispatchRepo().NullifySoldBy(ctx, id); err != nil {
			return err
		}
		return repos.UserRepo().Delete(ctx, id)
	})
}
