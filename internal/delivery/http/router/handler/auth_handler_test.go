package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/delivery/http/session"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, session.NewCookieStore(cfg), logger), uc
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup(t *testing.T) {
	h, uc := newAuthHandler(t)

	userID := uuid.New()
	uc.EXPECT().Signup(mock.Anything, &usecase.SignupInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
	}).Return(&usecase.SignupOutput{
		User: &entity.PublicUser{ID: userID, Username: "alice", Email: "alice@example.com"},
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/signup",
		`{"username":"alice","email":"alice@example.com","password":"hunter22"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())

	// No session is issued on signup.
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Signup_ValidationRejectsBeforeUsecase(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing username", body: `{"email":"a@example.com","password":"hunter22"}`},
		{name: "missing email", body: `{"username":"alice","password":"hunter22"}`},
		{name: "short password", body: `{"username":"alice","email":"a@example.com","password":"short"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations are set; the usecase must never be reached.
			h, _ := newAuthHandler(t)

			c, _ := newJSONContext(http.MethodPost, "/auth/signup", tt.body)

			err := h.Signup(c)

			require.Error(t, err)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	h, uc := newAuthHandler(t)

	expiresAt := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Second)
	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{
		Identifier: "alice",
		Password:   "hunter22",
	}).Return(&usecase.LoginOutput{
		Token:     "signed-token",
		ExpiresAt: expiresAt,
		User:      &entity.PublicUser{ID: uuid.New(), Username: "alice"},
	}, nil)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"identifier":"alice","password":"hunter22"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.WithinDuration(t, expiresAt, cookies[0].Expires, time.Second)

	// The token must never appear in the response body.
	assert.NotContains(t, rec.Body.String(), "signed-token")
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
