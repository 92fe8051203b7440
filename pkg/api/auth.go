package api

import (
	"context"
	"errors"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
)

type principalKey struct{}

// principalFrom returns the authenticated service-account principal
// attached by the auth middleware.
func principalFrom(ctx context.Context) (*credentials.AuthenticatedUser, bool) {
	user, ok := ctx.Value(principalKey{}).(*credentials.AuthenticatedUser)
	return user, ok
}

// withAuth wraps a handler with X-Api-Key authentication. The resolved
// principal is carried on the request context; handlers scope every
// query to its company.
func (s *Server) withAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		plainKey := c.Request().Header.Get("X-Api-Key")
		if plainKey == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing X-Api-Key header")
		}

		user, err := s.broker.Authenticate(c.Request().Context(), plainKey)
		if err != nil {
			if errors.Is(err, credentials.ErrInvalidKey) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid service account key")
			}
			return mapServiceError(err)
		}

		ctx := context.WithValue(c.Request().Context(), principalKey{}, user)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
