package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account able to sign in to the content-management panel.
// There is no public registration; accounts are bootstrapped from config.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is a live sign-in. The token doubles as the primary key and is
// handed to the client as an opaque bearer credential.
type Session struct {
	Token     uuid.UUID `json:"token"`
	UserID    uuid.UUID `json:"-"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
