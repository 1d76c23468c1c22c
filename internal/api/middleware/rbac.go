package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/familyhub/calendar-hub/internal/core/domain"
)

// RBAC admits requests whose role, as set by Auth, is one of allowedRoles.
// Others fail with domain.ErrForbidden for the central error handler. Run it
// after Auth with a RoleLookup so a demoted member is refused at once.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				userID, _ := c.Get("user_id").(string)
				return fmt.Errorf("%w: member %q has role %q", domain.ErrForbidden, userID, role)
			}
			return next(c)
		}
	}
}
