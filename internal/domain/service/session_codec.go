package service

import (
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionCodec serializes a session to, and recovers it from, the opaque token
// carried in the session cookie. The token is the only copy of the session;
// the server keeps no session table.
type SessionCodec interface {
	// Encode builds a session for the user with a fixed lifetime from now and
	// returns its transport-ready token together with the absolute expiry.
	Encode(userID uuid.UUID, username, email string) (token string, expiresAt time.Time, err error)

	// Decode parses and verifies a token. It returns nil on any failure
	// (malformed input, bad signature, wrong signing method) so callers cannot
	// forget to handle corruption. Decode does NOT check expiry; callers must
	// evaluate Session.Expired themselves (expiry is handled lazily so the
	// cookie can be cleared as a side effect at the read site).
	Decode(token string) *entity.Session
}
