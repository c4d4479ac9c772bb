package identity

import (
	"github.com/google/uuid"
)

// PrincipalKind discriminates the caller categories a request
// can act as. The kind is resolved once, up front, so services
// never re-derive permissions from raw user records.
type PrincipalKind int

const (
	// KindUnauthorized is a caller with no usable permissions.
	KindUnauthorized PrincipalKind = iota
	// KindAdmin may act on any store and manage reference data.
	KindAdmin
	// KindStoreManager may act only on the stores they own.
	KindStoreManager
)

// Principal is the resolved authority of a caller. A store manager
// principal carries the store it is currently acting for; admin and
// unauthorized principals carry no store.
type Principal struct {
	kind    PrincipalKind
	userID  uuid.UUID
	storeID uuid.UUID
}

// Unauthorized returns a principal with no permissions
func Unauthorized() Principal {
	return Principal{kind: KindUnauthorized}
}

// AdminPrincipal returns a principal acting with admin authority
func AdminPrincipal(userID uuid.UUID) Principal {
	return Principal{kind: KindAdmin, userID: userID}
}

// StoreManagerPrincipal returns a principal acting for a single store
func StoreManagerPrincipal(userID, storeID uuid.UUID) Principal {
	return Principal{kind: KindStoreManager, userID: userID, storeID: storeID}
}

// Kind returns the principal's category
func (p Principal) Kind() PrincipalKind {
	return p.kind
}

// UserID returns the acting user, or uuid.Nil for unauthorized callers
func (p Principal) UserID() uuid.UUID {
	return p.userID
}

// StoreID returns the store a manager acts for, or uuid.Nil otherwise
func (p Principal) StoreID() uuid.UUID {
	if p.kind != KindStoreManager {
		return uuid.Nil
	}
	return p.storeID
}

// IsAdmin reports whether the principal has admin authority
func (p Principal) IsAdmin() bool {
	return p.kind == KindAdmin
}

// IsStoreManager reports whether the principal manages a store
func (p Principal) IsStoreManager() bool {
	return p.kind == KindStoreManager
}

// CanManageStore reports whether the principal may operate the
// given store's ledger. Admins may operate any store; managers
// only the one they act for.
func (p Principal) CanManageStore(storeID uuid.UUID) bool {
	switch p.kind {
	case KindAdmin:
		return true
	case KindStoreManager:
		return p.storeID == storeID
	}
	return false
}
