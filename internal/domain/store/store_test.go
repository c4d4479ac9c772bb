package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storetrack/backend/internal/domain/shared"
)

func TestNewStore(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates store with valid fields", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "12 Main St", ownerID)

		require.NoError(t, err)
		assert.Equal(t, "Main Street Market", s.Name)
		assert.Equal(t, "12 Main St", s.Address)
		assert.Equal(t, ownerID, s.OwnerID)
		assert.Equal(t, 1, s.Version)
	})

	t.Run("emits created event", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "", ownerID)

		require.NoError(t, err)
		events := s.GetDomainEvents()
		require.Len(t, events, 1)

		created, ok := events[0].(*StoreCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, EventTypeStoreCreated, created.EventType())
		assert.Equal(t, s.ID, created.StoreID)
		assert.Equal(t, ownerID, created.OwnerID)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewStore("  ", "", ownerID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_NAME", domainErr.Code)
	})

	t.Run("rejects name longer than 150 characters", func(t *testing.T) {
		_, err := NewStore(strings.Repeat("a", 151), "", ownerID)

		require.Error(t, err)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := NewStore("Main Street Market", "", uuid.Nil)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_OWNER", domainErr.Code)
	})
}

func TestStoreUpdate(t *testing.T) {
	t.Run("updates name and address", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "12 Main St", uuid.New())
		require.NoError(t, err)

		err = s.Update("Corner Market", "1 Corner Rd")

		require.NoError(t, err)
		assert.Equal(t, "Corner Market", s.Name)
		assert.Equal(t, "1 Corner Rd", s.Address)
		assert.Equal(t, 2, s.Version)
	})

	t.Run("rejects invalid name", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "", uuid.New())
		require.NoError(t, err)

		err = s.Update("", "")

		require.Error(t, err)
		assert.Equal(t, "Main Street Market", s.Name)
	})
}

func TestStoreOwnership(t *testing.T) {
	ownerID := uuid.New()

	t.Run("reports owner correctly", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "", ownerID)
		require.NoError(t, err)

		assert.True(t, s.IsOwnedBy(ownerID))
		assert.False(t, s.IsOwnedBy(uuid.New()))
	})

	t.Run("transfers ownership", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "", ownerID)
		require.NoError(t, err)

		next := uuid.New()
		err = s.TransferOwnership(next)

		require.NoError(t, err)
		assert.True(t, s.IsOwnedBy(next))
	})

	t.Run("rejects nil owner", func(t *testing.T) {
		s, err := NewStore("Main Street Market", "", ownerID)
		require.NoError(t, err)

		err = s.TransferOwnership(uuid.Nil)

		require.Error(t, err)
		assert.True(t, s.IsOwnedBy(ownerID))
	})
}
