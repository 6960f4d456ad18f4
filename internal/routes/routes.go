package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wellnessbridge/backend/internal/handlers"
	"github.com/wellnessbridge/backend/internal/middleware"
)

// Setup mounts every route. No route is authenticated: callers pass user ids
// in the request and nothing verifies them.
func Setup(
	app *fiber.App,
	metrics *middleware.Metrics,
	authHandler *handlers.AuthHandler,
	confessionHandler *handlers.ConfessionHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", metrics.Handler())

	// Accounts
	app.Post("/signup", authHandler.Signup)
	app.Post("/login", authHandler.Login)

	api := app.Group("/api")

	// Confessions
	api.Post("/confessions", confessionHandler.Create)
	api.Get("/confessions", confessionHandler.List)
	api.Get("/my-confessions/:userId", confessionHandler.ListByUser)

	// Reviews
	api.Post("/replies", confessionHandler.Reply)
	api.Get("/legal-cases", confessionHandler.ListLegalCases)
	api.Post("/legal-advice", confessionHandler.SubmitLegalAdvice)
}
