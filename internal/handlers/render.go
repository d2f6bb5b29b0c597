package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/stockroom-backend/internal/middleware"
)

// render draws a view with the shared layout, consuming any pending flash
// messages in the process.
func render(c *fiber.Ctx, name string, data fiber.Map) error {
	sess := middleware.FromCtx(c)
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = sess.PopFlashes()
	data["SessionUser"] = sess.User
	return c.Render(name, data)
}
