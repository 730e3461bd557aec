package rest

import (
	"net/http"

	"stash/utils/errors"
	"stash/utils/logger"

	"github.com/labstack/echo/v4"
)

// handleError maps application errors to HTTP responses. AppError codes
// carry their own status mapping; anything else is an opaque 500.
func handleError(c echo.Context, err error, operation string) error {
	errors.LogError(logger.Logger, err, operation)

	if appErr, ok := err.(*errors.AppError); ok {
		return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{
		"code":    string(errors.ErrCodeUnknown),
		"message": "internal server error",
	})
}
