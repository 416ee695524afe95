package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"rental/internal/auth"
	"rental/internal/errors"
)

// ClaimsContextKey is where echo-jwt stores the parsed token.
const ClaimsContextKey = "user"

// callerClaims returns the claims echo-jwt stored for the request, if any.
func callerClaims(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get(ClaimsContextKey).(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok || claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}

// currentClaims returns the claims of the authenticated caller.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := callerClaims(c)
	if !ok {
		return nil, respondError(c, errors.New(errors.KindUnauthorized, "INVALID_TOKEN", "invalid token"))
	}
	return claims, nil
}

// selfOrAdmin resolves the caller and rejects anyone but userID or an admin.
func selfOrAdmin(c echo.Context, userID uint) (*auth.Claims, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin() && claims.UserID != userID {
		return nil, respondError(c, errors.ErrForbidden)
	}
	return claims, nil
}

// RequireAdmin rejects callers whose token does not carry the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := currentClaims(c)
		if err != nil {
			return err
		}
		if !claims.IsAdmin() {
			return respondError(c, errors.ErrForbidden)
		}
		return next(c)
	}
}
