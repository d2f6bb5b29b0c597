package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/stockroom-backend/internal/middleware"
	"github.com/tyrehub/stockroom-backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", nil)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sess := middleware.FromCtx(c)
	username := c.FormValue("username")

	user, err := h.auth.Register(username, c.FormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			sess.Flash("info", "Username already exists")
			return c.Redirect("/register", fiber.StatusFound)
		}
		slog.Error("registration failed", "error", err, "path", c.Path())
		return fiber.ErrInternalServerError
	}

	sess.User = user.Username
	sess.Flash("success", "Registration Successful!")
	return c.Redirect("/profile/"+user.Username, fiber.StatusFound)
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", nil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sess := middleware.FromCtx(c)
	username := c.FormValue("username")

	user, err := h.auth.Login(username, c.FormValue("password"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Same flash for unknown user and wrong password.
			sess.Flash("error", "Invalid Username and/or Password")
			return c.Redirect("/login", fiber.StatusFound)
		}
		slog.Error("login failed", "error", err, "path", c.Path())
		return fiber.ErrInternalServerError
	}

	sess.User = user.Username
	sess.Flash("success", "Welcome, "+username)
	return c.Redirect("/profile/"+user.Username, fiber.StatusFound)
}

// Profile shows the session user's own profile. The :username path segment
// is accepted for routing but never used for the lookup.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	sess := middleware.FromCtx(c)
	if sess.User == "" {
		return c.Redirect("/login", fiber.StatusFound)
	}

	user, err := h.auth.Lookup(sess.User)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			sess.ClearUser()
			return c.Redirect("/login", fiber.StatusFound)
		}
		slog.Error("profile lookup failed", "error", err, "username", sess.User)
		return fiber.ErrInternalServerError
	}

	return render(c, "profile", fiber.Map{"Username": user.Username})
}

// Logout clears the session user. Idempotent: logging out while logged out
// is not an error.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess := middleware.FromCtx(c)
	sess.Flash("info", "You have been logged out")
	sess.ClearUser()
	return c.Redirect("/login", fiber.StatusFound)
}
