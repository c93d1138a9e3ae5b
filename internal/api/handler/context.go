package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/reviewhub/item-reviews/internal/api/middleware"
	"github.com/reviewhub/item-reviews/internal/core/domain"
)

// ctxUserID returns the identity injected by the Auth middleware. An empty
// value means the route was mounted without the middleware.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.UserIDKey).(string)
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
