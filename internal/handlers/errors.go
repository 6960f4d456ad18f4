package handlers

import (
	"log/slog"

	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/wellnessbridge/backend/internal/dto"
)

// serverError logs err with request context, reports it to Sentry when
// configured, and answers with a generic 500. err never reaches the client.
func serverError(c *fiber.Ctx, action, message string, err error) error {
	slog.Error(action+" failed",
		"action", action,
		"method", c.Method(),
		"path", c.Path(),
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(message))
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(message))
}
