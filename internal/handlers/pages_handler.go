package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Dashboard is a static render, safe for unauthenticated visitors. Both "/"
// and "/dashboard" land here.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "dashboard", nil)
}
