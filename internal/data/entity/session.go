package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record of an issued session token. The token
// itself travels as a signed cookie; this row backs best-effort revocation
// and out-of-band role verification.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Role      UserRole   `db:"role"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
