package domain

import (
	"github.com/google/uuid"
)

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "appuser"
)

// TokenPayload is the caller identity extracted from a verified access token.
// It is passed explicitly to every operation that needs to know who is acting.
type TokenPayload struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Role   UserRole
}

func (p *TokenPayload) IsAdmin() bool {
	return p.Role == Admin
}

// CanAccess reports whether the caller may act on a resource owned by ownerID.
func (p *TokenPayload) CanAccess(ownerID uuid.UUID) bool {
	return p.IsAdmin() || p.UserID == ownerID
}
