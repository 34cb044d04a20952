package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	return rec
}

func TestErrorMiddleware_HandleHTTPError_AppError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "invalid credentials maps to 401",
			err:      domainerrors.ErrInvalidCredentials,
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
		{
			name:     "ownership violation maps to 403",
			err:      domainerrors.ErrProductOwnershipViolation,
			wantCode: http.StatusForbidden,
			wantBody: "PRODUCT_OWNERSHIP_VIOLATION",
		},
		{
			name:     "missing product maps to 404",
			err:      domainerrors.ErrProductNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "PRODUCT_NOT_FOUND",
		},
		{
			name:     "wrapped app errors still unwrap",
			err:      errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"),
			wantCode: http.StatusUnauthorized,
			wantBody: "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(t, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError_EchoHTTPError(t *testing.T) {
	rec := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}

func TestErrorMiddleware_HandleHTTPError_UnknownError(t *testing.T) {
	rec := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "boom")
}
