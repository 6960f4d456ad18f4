package server

import (
	"errors"
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/wellnessbridge/backend/internal/config"
	"github.com/wellnessbridge/backend/internal/database"
	"github.com/wellnessbridge/backend/internal/dto"
	"github.com/wellnessbridge/backend/internal/handlers"
	"github.com/wellnessbridge/backend/internal/middleware"
	"github.com/wellnessbridge/backend/internal/routes"
	"github.com/wellnessbridge/backend/internal/services"
)

// New builds the Fiber app with middleware and routes wired to store.
func New(cfg *config.Config, store *database.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: errorHandler,
	})

	metrics := middleware.NewMetrics()

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(metrics.Middleware())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.RequestTimeout(cfg.DBQueryTimeout))

	authService := services.NewAuthService(store.DB, cfg.BcryptCost)
	confessionService := services.NewConfessionService(store.DB)

	routes.Setup(app,
		metrics,
		handlers.NewAuthHandler(authService),
		handlers.NewConfessionHandler(confessionService),
		handlers.NewHealthHandler(store),
	)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	switch {
	case code == fiber.StatusNotFound:
		message = "Not found"
	case code >= 500:
		// only 4xx details reach the client
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Server error"
	}

	return c.Status(code).JSON(dto.Fail(message))
}
