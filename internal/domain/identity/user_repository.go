package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/storetrack/backend/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by its unique username
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindAll finds all users matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)

	// ExistsByUsername checks whether a username is taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// Delete deletes a user
	Delete(ctx context.Context, id uuid.UUID) error
}
