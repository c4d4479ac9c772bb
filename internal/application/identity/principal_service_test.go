package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/backend/internal/domain/identity"
	"github.com/storetrack/backend/internal/domain/shared"
	"github.com/storetrack/backend/internal/domain/store"
)

func newUser(t *testing.T, username string, role identity.Role) *identity.User {
	t.Helper()
	u, err := identity.NewUser(username, "s3cret-pass", role)
	require.NoError(t, err)
	return u
}

func TestPrincipalServiceResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("admin user resolves to admin principal", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		storeRepo := new(MockStoreRepository)
		svc := NewPrincipalService(userRepo, storeRepo)

		user := newUser(t, "root", identity.RoleAdmin)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		principal, err := svc.Resolve(ctx, user.ID)

		require.NoError(t, err)
		assert.True(t, principal.IsAdmin())
		assert.Equal(t, user.ID, principal.UserID())
	})

	t.Run("store manager resolves to their oldest store", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		storeRepo := new(MockStoreRepository)
		svc := NewPrincipalService(userRepo, storeRepo)

		user := newUser(t, "alice", identity.RoleStoreManager)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		first, err := store.NewStore("First", "", user.ID)
		require.NoError(t, err)
		storeRepo.On("FirstByOwner", ctx, user.ID).Return(first, nil)

		principal, err := svc.Resolve(ctx, user.ID)

		require.NoError(t, err)
		assert.True(t, principal.IsStoreManager())
		assert.Equal(t, first.ID, principal.StoreID())
	})

	t.Run("store manager without a store is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		storeRepo := new(MockStoreRepository)
		svc := NewPrincipalService(userRepo, storeRepo)

		user := newUser(t, "alice", identity.RoleStoreManager)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		storeRepo.On("FirstByOwner", ctx, user.ID).Return(nil, shared.ErrNotFound)

		principal, err := svc.Resolve(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, identity.KindUnauthorized, principal.Kind())
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewPrincipalService(userRepo, new(MockStoreRepository))

		id := uuid.New()
		userRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		principal, err := svc.Resolve(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, identity.KindUnauthorized, principal.Kind())
	})

	t.Run("inactive user is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewPrincipalService(userRepo, new(MockStoreRepository))

		user := newUser(t, "root", identity.RoleAdmin)
		user.Deactivate()
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		principal, err := svc.Resolve(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, identity.KindUnauthorized, principal.Kind())
	})

	t.Run("user without a role is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewPrincipalService(userRepo, new(MockStoreRepository))

		user := newUser(t, "nobody", identity.RoleNone)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		principal, err := svc.Resolve(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, identity.KindUnauthorized, principal.Kind())
	})
}
