package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key the auth middleware stores the caller
// identity under.
const identityKey = "identity"

// AuthMiddleware verifies the Bearer token and stores the caller identity in
// the request context for handlers to read via identityFrom.
func AuthMiddleware(tokens *TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return errorJSON(c, http.StatusUnauthorized, "Authorization header is missing")
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				return errorJSON(c, http.StatusUnauthorized, "Authorization header must use the Bearer scheme")
			}

			identity, err := tokens.Parse(tokenString)
			if err != nil {
				return errorJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// identityFrom reads the authenticated identity stored by AuthMiddleware.
func identityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}

// MetricsMiddleware records request counts and durations per route. The
// registered route path is used as the label, not the raw URL, to keep label
// cardinality bounded.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			method := c.Request().Method

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
