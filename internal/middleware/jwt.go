// Package middleware contains reusable HTTP middleware: bearer-token
// authentication, role enforcement, rate limiting and response caching.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/artifec12/event-tracker/internal/utils"
)

// JWTAuth returns middleware that authenticates a Bearer session token and
// injects the verified identity into the request context under "user_id"
// (uint64) and "role" (string). It runs on every protected route; any
// failure — missing header, malformed token, bad signature, expired —
// short-circuits with 401 before the handler sees the request. Verification
// is purely local: no store lookup happens here.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := utils.ParseSessionToken(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
