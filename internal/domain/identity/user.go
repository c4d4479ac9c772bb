package identity

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/storetrack/backend/internal/domain/shared"
)

// Role determines what a user is allowed to do.
type Role string

const (
	// RoleAdmin may manage the catalog, stores, and every ledger.
	RoleAdmin Role = "admin"
	// RoleStoreManager may operate the ledgers of stores they own.
	RoleStoreManager Role = "store_manager"
	// RoleNone carries no permissions.
	RoleNone Role = "none"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStoreManager, RoleNone:
		return true
	}
	return false
}

// User represents an account that can sign in
type User struct {
	shared.BaseAggregateRoot
	Username     string `gorm:"type:varchar(150);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'none'"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with the given credentials and role
func NewUser(username, password string, role Role) (*User, error) {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username is required")
	}
	if len(trimmed) > 150 {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot exceed 150 characters")
	}
	if !role.Valid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Username:          trimmed,
		Role:              role,
		Active:            true,
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	return user, nil
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_FAILED", "Failed to hash password")
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword reports whether the given password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetRole changes the user's role
func (u *User) SetRole(role Role) error {
	if !role.Valid() {
		return shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	u.Role = role
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Deactivate disables the account without deleting it
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}
