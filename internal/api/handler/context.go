package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/estately/apartments-api/internal/api/middleware"
	"github.com/estately/apartments-api/internal/core/domain"
)

// callerFrom extracts the caller injected by the Auth middleware. Routes
// registered without auth middleware, or with OptionalAuth and no token,
// yield the anonymous caller — the policy evaluator treats both the same.
func callerFrom(c echo.Context) domain.Caller {
	caller, _ := c.Get(middleware.CallerContextKey).(domain.Caller)
	return caller
}
