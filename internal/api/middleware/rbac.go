package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a static role allow-list on the route it wraps. It assumes
// Auth ran first and attached the role claim; an absent role is treated the
// same as a disallowed one.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
