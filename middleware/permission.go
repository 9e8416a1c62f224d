package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireUserType returns a middleware that gates a route on the cached
// user snapshot's type. Bulk batch decisions are admin-only.
func RequireUserType(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFromCtx(c)
		if sess == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in again", nil)
		}

		user := sess.CurrentUser()
		if user == nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Please log in again", nil)
		}

		for _, userType := range allowed {
			if user.UserType == userType {
				return c.Next()
			}
		}

		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
