package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/societyhub/society-api/internal/core/ports"
)

// Context keys populated by the Auth middleware.
const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxRole     = "role"
	CtxTokenID  = "token_id"
	CtxTokenExp = "token_exp"
)

// callerFrom extracts the identity injected by the Auth middleware. An empty
// email means the middleware did not run, which is reported as 401.
func callerFrom(c echo.Context) (ports.Caller, error) {
	email, _ := c.Get(CtxEmail).(string)
	if email == "" {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get(CtxUserID).(string)
	role, _ := c.Get(CtxRole).(string)
	return ports.Caller{ID: id, Email: email, Role: role}, nil
}

func tokenFrom(c echo.Context) (id string, expiresAt time.Time) {
	id, _ = c.Get(CtxTokenID).(string)
	expiresAt, _ = c.Get(CtxTokenExp).(time.Time)
	return id, expiresAt
}
