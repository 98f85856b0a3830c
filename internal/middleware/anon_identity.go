package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnonIDHeader carries the caller's anonymous identity token. The token
// attributes likes, comments and reports; it is never an authentication
// credential.
const AnonIDHeader = "X-Anon-ID"

// contextAnonID is the echo context key the identity is stored under
const contextAnonID = "anonID"

// AnonIdentity creates an Echo middleware extracting the anonymous identity
// token from the request. Reads work without one; write handlers require it
// via RequireAnonID.
func AnonIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(AnonIDHeader))
			if raw != "" {
				if _, err := uuid.Parse(raw); err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "X-Anon-ID must be a UUID")
				}
				c.Set(contextAnonID, raw)
			}
			return next(c)
		}
	}
}

// AnonIDFromContext returns the caller's anonymous id, or "" when absent
func AnonIDFromContext(c echo.Context) string {
	id, _ := c.Get(contextAnonID).(string)
	return id
}

// RequireAnonID returns the caller's anonymous id or a 400 error for write
// endpoints that need attribution
func RequireAnonID(c echo.Context) (string, error) {
	id := AnonIDFromContext(c)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "X-Anon-ID header is required")
	}
	return id, nil
}
