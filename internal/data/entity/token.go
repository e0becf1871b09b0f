package entity

import (
	"github.com/google/uuid"
)

// Token is the opaque auth token issued once per user at registration.
type Token struct {
	Base
	UserID uuid.UUID `db:"user_id"`
	Token  uuid.UUID `db:"token"`
}
