package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

// PrincipalService resolves a user into the authority they act with.
// Resolution happens once per request; services downstream only ever
// see the resulting principal.
type PrincipalService struct {
	userRepo  identity.UserRepository
	storeRepo store.StoreRepository
}

// NewPrincipalService creates a new PrincipalService
func NewPrincipalService(userRepo identity.UserRepository, storeRepo store.StoreRepository) *PrincipalService {
	return &PrincipalService{
		userRepo:  userRepo,
		storeRepo: storeRepo,
	}
}

// Resolve determines the principal for a user. Unknown, inactive, and
// unprivileged users resolve to the unauthorized principal rather than
// an error; a store manager who owns no store has nothing to manage
// and resolves to unauthorized as well.
//
// A manager with several stores acts for the oldest one.
func (s *PrincipalService) Resolve(ctx context.Context, userID uuid.UUID) (identity.Principal, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return identity.Unauthorized(), nil
		}
		return identity.Unauthorized(), err
	}

	if !user.Active {
		return identity.Unauthorized(), nil
	}

	switch user.Role {
	case identity.RoleAdmin:
		return identity.AdminPrincipal(user.ID), nil
	case identity.RoleStoreManager:
		first, err := s.storeRepo.FirstByOwner(ctx, user.ID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return identity.Unauthorized(), nil
			}
			return identity.Unauthorized(), err
		}
		return identity.StoreManagerPrincipal(user.ID, first.ID), nil
	}

	return identity.Unauthorized(), nil
}
