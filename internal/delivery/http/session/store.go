// Package session manages the browser cookie that carries the session token.
package session

import (
	"net/http"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// CookieStore reads and writes the session cookie. The cookie value is the
// signed token produced by the session codec; the store never inspects it.
type CookieStore struct {
	secure bool
}

// NewCookieStore creates a cookie store. The Secure flag follows the
// environment so local development over plain HTTP keeps working.
func NewCookieStore(cfg *config.Config) *CookieStore {
	return &CookieStore{
		secure: cfg.Env.Env == "production",
	}
}

// Issue sets the session cookie on the response. The cookie expiry mirrors
// the token's own expiry; both are fixed at issue time, never renewed.
func (s *CookieStore) Issue(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token from the request cookie, or "" when absent.
func (s *CookieStore) Token(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// Clear expires the session cookie immediately.
func (s *CookieStore) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
