package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/frutech/auth-service/internal/core/domain"
)

// principal is the authenticated identity injected by the Auth
// middleware.
type principal struct {
	Username string
	UserID   string
	UserType string
}

// ctxPrincipal extracts the principal and fast-fails before any service
// call: user_type must be non-empty (presence proves the middleware
// ran), and a token without a user id is structurally valid but
// operationally unusable.
func ctxPrincipal(c echo.Context) (principal, error) {
	userType, _ := c.Get("user_type").(string)
	if userType == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	username, _ := c.Get("username").(string)
	return principal{Username: username, UserID: userID, UserType: userType}, nil
}

// canAccess reports whether p may read or mutate the account with the
// given id: admins reach every record, users only their own.
func (p principal) canAccess(id string) bool {
	return p.UserType == domain.RoleAdmin || p.UserID == id
}
