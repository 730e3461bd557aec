package middleware

import (
	"context"
	"net/http"

	"stash/domain"
	"stash/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the authenticated user from the X-User-ID
// header set by the identity-aware proxy in front of this service and
// attaches it to the request context. Requests without a valid user id
// are rejected; the search core never runs unscoped.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("X-User-ID")
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
			}

			userID, err := uuid.Parse(raw)
			if err != nil || userID == uuid.Nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid user identity")
			}

			user := &domain.UserContext{
				UserID:    userID,
				Email:     c.Request().Header.Get("X-User-Email"),
				SessionID: c.Request().Header.Get("X-Session-ID"),
			}

			ctx := domain.SetUserContext(c.Request().Context(), user)
			ctx = context.WithValue(ctx, logger.UserIDKey, userID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
