// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the time-limited proof of identity held by the client.
// It is never persisted server-side: the encoded token in the session cookie
// is the only copy, so horizontal scaling needs no shared session table.
type Session struct {
	UserID    uuid.UUID // The ID of the authenticated user.
	Username  string    // Denormalized for display without a user lookup.
	Email     string    // Denormalized for display without a user lookup.
	ExpiresAt time.Time // Absolute expiry, fixed at issuance. No sliding renewal.
}

// Expired reports whether the session's wall-clock lifetime has passed.
// Expiry is evaluated lazily at read time; nothing runs it proactively.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
