package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/auth"
	"github.com/annelsopenclassrooms/Projet-12-Backend/internal/core/domain"
)

// PrincipalKey is the context key under which the resolved principal is
// stored for handlers.
const PrincipalKey = "principal"

// Authenticate resolves the bearer credential into a live principal and
// injects it into the request context. All credential failures collapse to
// 401 for the client; the decode error (expired vs invalid) is logged for
// diagnostics. The principal is loaded fresh from the staff store on every
// request, so role changes and deletions take effect immediately.
func Authenticate(resolver *auth.SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			p, err := resolver.Resolve(c.Request().Context(), parts[1])
			switch {
			case errors.Is(err, domain.ErrExpiredCredential) || errors.Is(err, domain.ErrInvalidCredential):
				log.Debug().Err(err).Msg("credential rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			case errors.Is(err, domain.ErrNotAuthenticated):
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			case err != nil:
				// Unexpected store failure, not an authentication outcome.
				return err
			}

			c.Set(PrincipalKey, p)
			return next(c)
		}
	}
}
