package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartjob/job-board/internal/api/middleware"
	"github.com/smartjob/job-board/internal/core/domain"
)

// principal returns the caller bound by the access filter. Its absence on a
// protected route means the middleware chain is misconfigured; fail closed.
func principal(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil || p.Subject == "" {
		return nil, domain.ErrUnauthenticated
	}
	return p, nil
}

// bindAndValidate decodes the body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
