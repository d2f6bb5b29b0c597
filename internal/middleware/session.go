package middleware

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/tyrehub/stockroom-backend/internal/session"
)

const sessionKey = "session"

// Session decodes the session cookie into a request-scoped session.Session
// and writes the (possibly mutated) session back after the handler chain
// returns. The cookie has no max age: it lives for one browser session.
func Session(codec *session.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := codec.Decode(c.Cookies(session.CookieName))
		c.Locals(sessionKey, sess)

		err := c.Next()

		token, encErr := codec.Encode(sess)
		if encErr != nil {
			slog.Error("failed to encode session cookie", "error", encErr, "path", c.Path())
			return err
		}
		c.Cookie(&fiber.Cookie{
			Name:     session.CookieName,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return err
	}
}

// FromCtx returns the request's session. The session middleware always puts
// one in Locals, so a missing entry means a wiring bug; an empty session is
// returned rather than panicking.
func FromCtx(c *fiber.Ctx) *session.Session {
	if sess, ok := c.Locals(sessionKey).(*session.Session); ok {
		return sess
	}
	return &session.Session{}
}
