package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/societyhub/society-api/internal/api/handler"
	"github.com/societyhub/society-api/internal/core/domain"
	"github.com/societyhub/society-api/internal/core/ports"
)

// Auth validates the bearer token and injects the caller into the context.
// Tokens found in denylist are rejected; denylist may be nil. The role put in
// the context is the one roles currently stores for the user, not the role
// claim of the token.
func Auth(issuer ports.TokenIssuer, denylist ports.TokenDenylist, roles ports.RoleResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := issuer.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if denylist != nil && claims.TokenID != "" {
				revoked, err := denylist.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					log.Error().Err(err).Msg("denylist lookup failed")
					return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			role, err := roles.CurrentRole(c.Request().Context(), claims.UserID)
			if errors.Is(err, domain.ErrInvalidToken) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if err != nil {
				log.Error().Err(err).Str("user_id", claims.UserID).Msg("role lookup failed")
				return echo.NewHTTPError(http.StatusServiceUnavailable, "account store unavailable")
			}

			c.Set(handler.CtxUserID, claims.UserID)
			c.Set(handler.CtxEmail, claims.Email)
			c.Set(handler.CtxRole, role)
			c.Set(handler.CtxTokenID, claims.TokenID)
			c.Set(handler.CtxTokenExp, claims.ExpiresAt)

			return next(c)
		}
	}
}
