package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireUser guards mutating routes: requests with no authenticated session
// user are redirected to the login form before handler logic runs.
func RequireUser(c *fiber.Ctx) error {
	if FromCtx(c).User == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Next()
}
