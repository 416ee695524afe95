package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"rental/internal/auth"
	"rental/internal/errors"
	"rental/internal/model"
)

type testValidator struct {
	validator *validator.Validate
}

func (tv *testValidator) Validate(i interface{}) error {
	return tv.validator.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	return e
}

// newContext builds a request context. A non-nil claims value plays the
// part of the echo-jwt middleware.
func newContext(e *echo.Echo, method, path, body string, claims *auth.Claims) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsContextKey, &jwt.Token{Claims: claims, Valid: true})
	}
	return c, rec
}

func adminClaims() *auth.Claims {
	return &auth.Claims{UserID: 1, Email: "admin@rental.com", Role: model.RoleAdmin}
}

func userClaims(id uint) *auth.Claims {
	return &auth.Claims{UserID: id, Email: "user@rental.com", Role: model.RoleUser}
}

// requireHTTPError asserts err is an echo error with the given status and code.
func requireHTTPError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	require.Equal(t, status, he.Code)
	if code != "" {
		resp, ok := he.Message.(errors.ErrorResponse)
		require.True(t, ok, "expected errors.ErrorResponse, got %T", he.Message)
		require.Equal(t, code, resp.Code)
	}
}
