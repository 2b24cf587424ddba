package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobdeck/job-board-api/internal/api/middleware"
	"github.com/jobdeck/job-board-api/internal/core/domain"
)

// ctxUser extracts the account loaded by the Auth middleware and fast-fails
// before any service call when it is missing; presence proves the middleware
// ran on this route.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
