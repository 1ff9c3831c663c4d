package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/estately/apartments-api/internal/core/domain"
	"github.com/estately/apartments-api/internal/core/ports"
)

// CallerContextKey is the echo context key the resolved caller is stored
// under. Handlers read it back through handler.callerFrom.
const CallerContextKey = "caller"

// Auth validates the bearer token, resolves the caller behind it and injects
// the caller into the request context. Requests without a valid token are
// rejected with 401.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			caller, err := resolve(c, auth, token)
			if err != nil {
				return err
			}
			c.Set(CallerContextKey, caller)
			return next(c)
		}
	}
}

// OptionalAuth resolves a caller when a bearer token is supplied and falls
// back to the anonymous caller when the Authorization header is absent.
// A token that is present but bad is still rejected rather than silently
// downgraded to anonymous.
func OptionalAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				c.Set(CallerContextKey, domain.Anonymous)
				return next(c)
			}
			token, err := bearerToken(c)
			if err != nil {
				return err
			}
			caller, err := resolve(c, auth, token)
			if err != nil {
				return err
			}
			c.Set(CallerContextKey, caller)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func resolve(c echo.Context, auth ports.AuthService, token string) (domain.Caller, error) {
	userID, err := auth.ValidateToken(token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenExpired) {
			return domain.Anonymous, echo.NewHTTPError(http.StatusUnauthorized, "token expired")
		}
		return domain.Anonymous, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	caller, err := auth.ResolveCaller(c.Request().Context(), userID)
	if err != nil {
		return domain.Anonymous, err
	}
	return caller, nil
}
