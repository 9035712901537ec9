package middleware

import (
	"net/http"

	"github.com/creatorbridge/api/config"
	"github.com/creatorbridge/api/pkg/models"
	"github.com/labstack/echo/v4"
)

// RequireAdmin gates a route on the configured admin email allow-list.
// Admin is not a stored role: the allow-list is consulted on every
// request so configuration changes apply without re-issuing tokens.
func RequireAdmin(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, ok := c.Get("user_email").(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			if !cfg.IsAdmin(email) {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "Admin access required",
				})
			}

			c.Set("is_admin", true)

			return next(c)
		}
	}
}
