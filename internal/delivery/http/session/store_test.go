package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestStore(env string) *CookieStore {
	cfg := &config.Config{}
	cfg.Env.Env = env

	return NewCookieStore(cfg)
}

func TestCookieStore_IssueAndToken(t *testing.T) {
	t.Parallel()

	store := newTestStore("development")
	c, rec := newTestContext(t)

	expiresAt := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	store.Issue(c, "signed-token", expiresAt)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.WithinDuration(t, expiresAt, cookie.Expires, time.Second)
	assert.InDelta(t, 7*24*60*60, cookie.MaxAge, 2)

	// Reading back from a request carrying the cookie.
	c2, _ := newTestContext(t, &http.Cookie{Name: CookieName, Value: "signed-token"})
	assert.Equal(t, "signed-token", store.Token(c2))
}

func TestCookieStore_SecureInProduction(t *testing.T) {
	t.Parallel()

	store := newTestStore("production")
	c, rec := newTestContext(t)

	store.Issue(c, "tok", time.Now().Add(time.Hour))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestCookieStore_TokenMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore("development")
	c, _ := newTestContext(t)

	assert.Empty(t, store.Token(c))
}

func TestCookieStore_Clear(t *testing.T) {
	t.Parallel()

	store := newTestStore("development")
	c, rec := newTestContext(t)

	store.Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
	assert.Equal(t, -1, cookie.MaxAge)
}
