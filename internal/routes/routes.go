package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/tyrehub/stockroom-backend/internal/handlers"
	"github.com/tyrehub/stockroom-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	pagesHandler *handlers.PagesHandler,
	stockHandler *handlers.StockHandler,
	invoiceHandler *handlers.InvoiceHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	app.Get("/", pagesHandler.Dashboard)
	app.Get("/dashboard", pagesHandler.Dashboard)

	app.Get("/invoices", invoiceHandler.List)
	app.Get("/stock", stockHandler.List)

	// Credential submissions: 10 req/min per IP
	authLimit := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	app.Get("/register", authHandler.RegisterForm)
	app.Post("/register", authLimit, authHandler.Register)
	app.Get("/login", authHandler.LoginForm)
	app.Post("/login", authLimit, authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// GET and POST behave identically; the original surface accepted both.
	app.Get("/profile/:username", authHandler.Profile)
	app.Post("/profile/:username", authHandler.Profile)

	// Mutating routes sit behind the auth guard so created_by can never be
	// stamped from an empty session.
	app.Get("/add_product", middleware.RequireUser, stockHandler.AddForm)
	app.Post("/add_product", middleware.RequireUser, stockHandler.Add)
	app.Get("/edit_product/:product_id", middleware.RequireUser, stockHandler.EditForm)
	app.Post("/edit_product/:product_id", middleware.RequireUser, stockHandler.Edit)
}
