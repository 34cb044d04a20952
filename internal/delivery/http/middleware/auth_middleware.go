package middleware

import (
	"time"

	"storefront/internal/delivery/http/session"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// sessionContextKey is the echo.Context key holding the decoded session.
const sessionContextKey = "session"

// AuthMiddleware resolves the session cookie into an entity.Session.
//
// Expiry is handled lazily: a cookie carrying an expired or corrupt token is
// cleared right here, at the first read after expiry, and the request proceeds
// as anonymous.
type AuthMiddleware struct {
	codec service.SessionCodec
	store *session.CookieStore
	now   func() time.Time
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(codec service.SessionCodec, store *session.CookieStore) *AuthMiddleware {
	return &AuthMiddleware{
		codec: codec,
		store: store,
		now:   time.Now,
	}
}

// LoadSession attaches the session to the context when the cookie holds a
// valid, unexpired token. It never rejects the request; handlers that demand
// authentication use RequireSession on top of it.
func (m *AuthMiddleware) LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.store.Token(c)
		if token == "" {
			return next(c)
		}

		sess := m.codec.Decode(token)
		if sess == nil {
			// Corrupt or tampered token. Drop the cookie so the client stops sending it.
			m.store.Clear(c)

			return next(c)
		}

		if sess.Expired(m.now()) {
			m.store.Clear(c)

			return next(c)
		}

		c.Set(sessionContextKey, sess)

		return next(c)
	}
}

// RequireSession rejects the request with 401 unless LoadSession attached a
// session. It must be used AFTER LoadSession.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if GetSession(c) == nil {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

// GetSession returns the session attached by LoadSession, or nil.
func GetSession(c echo.Context) *entity.Session {
	sess, ok := c.Get(sessionContextKey).(*entity.Session)
	if !ok {
		return nil
	}

	return sess
}
