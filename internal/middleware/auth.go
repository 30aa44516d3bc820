package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"scent-store-api/internal/auth"
)

const (
	// OwnerKeyContextKey is where the resolved cart owner key lives on the
	// echo context. The key is opaque downstream: "user:<id>" for
	// authenticated customers, "session:<token>" for guests.
	OwnerKeyContextKey = "owner_key"

	// SessionTokenHeader carries the guest session token. When a guest
	// arrives without one, a token is minted and echoed back in the
	// response so the client can persist it.
	SessionTokenHeader = "X-Session-Token"

	authenticatedKey = "authenticated"
)

// OwnerKey resolves every request to a cart owner key. A valid bearer token
// wins over a session header; an invalid bearer token is rejected rather
// than silently downgraded to a guest.
func OwnerKey(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(header, "Bearer ") {
				customerID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
				}
				c.Set(OwnerKeyContextKey, fmt.Sprintf("user:%d", customerID))
				c.Set(authenticatedKey, true)
				return next(c)
			}

			token := c.Request().Header.Get(SessionTokenHeader)
			if token == "" {
				token = uuid.NewString()
			}
			c.Response().Header().Set(SessionTokenHeader, token)
			c.Set(OwnerKeyContextKey, "session:"+token)
			c.Set(authenticatedKey, false)
			return next(c)
		}
	}
}

// OwnerKeyFrom reads the owner key resolved by OwnerKey.
func OwnerKeyFrom(c echo.Context) string {
	if key, ok := c.Get(OwnerKeyContextKey).(string); ok {
		return key
	}
	return ""
}

// IsAuthenticated reports whether the request carried a valid bearer token.
func IsAuthenticated(c echo.Context) bool {
	authed, ok := c.Get(authenticatedKey).(bool)
	return ok && authed
}

// RequireAuth guards routes that only signed-in customers may use.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAuthenticated(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireAPIKey guards operator routes with a static key, in the manner of a
// back-office service: the header must match the configured value exactly.
func RequireAPIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" || c.Request().Header.Get("X-Api-Key") != key {
				return echo.NewHTTPError(http.StatusForbidden, "invalid api key")
			}
			return next(c)
		}
	}
}
