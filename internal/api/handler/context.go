package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// identity is the set of claims the Auth middleware injects.
type identity struct {
	OpenID string
	UserID string
	Role   string
	Name   string
	Email  string
}

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: open_id must be
// non-empty (presence proves the middleware ran and the token carried a
// usable subject).
func ctxIdentity(c echo.Context) (identity, error) {
	id := optionalIdentity(c)
	if id.OpenID == "" {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// optionalIdentity extracts claims without requiring them; all fields are
// empty for anonymous requests.
func optionalIdentity(c echo.Context) identity {
	openID, _ := c.Get("open_id").(string)
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	return identity{OpenID: openID, UserID: userID, Role: role, Name: name, Email: email}
}
