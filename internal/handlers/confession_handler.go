package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnessbridge/backend/internal/dto"
	"github.com/wellnessbridge/backend/internal/services"
)

// ConfessionHandler serves submission, listings and both review trails.
// None of these routes check who the caller is.
type ConfessionHandler struct {
	service *services.ConfessionService
}

func NewConfessionHandler(service *services.ConfessionService) *ConfessionHandler {
	return &ConfessionHandler{service: service}
}

func (h *ConfessionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateConfessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	confession, err := h.service.Create(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return badRequest(c, "All fields required")
		case errors.Is(err, services.ErrInvalidID):
			return badRequest(c, "Invalid user ID")
		}
		return serverError(c, "create confession", "Server error", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreatedConfessionResponse{
		Success:      true,
		Message:      "Confession submitted",
		ConfessionID: confession.ID.String(),
	})
}

func (h *ConfessionHandler) List(c *fiber.Ctx) error {
	confessions, err := h.service.List(c.UserContext())
	if err != nil {
		return serverError(c, "list confessions", "Server error", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: confessions})
}

func (h *ConfessionHandler) ListByUser(c *fiber.Ctx) error {
	confessions, err := h.service.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidID) {
			return badRequest(c, "Invalid user ID")
		}
		return serverError(c, "list user confessions", "Server error", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: confessions})
}

func (h *ConfessionHandler) Reply(c *fiber.Ctx) error {
	var req dto.ReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	confession, err := h.service.Reply(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return badRequest(c, "All fields required")
		case errors.Is(err, services.ErrInvalidID):
			return badRequest(c, "Invalid ID")
		case errors.Is(err, services.ErrConfessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Confession not found"))
		}
		return serverError(c, "reply", "Server error", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Message: "Reply sent", Data: confession})
}

func (h *ConfessionHandler) ListLegalCases(c *fiber.Ctx) error {
	cases, err := h.service.ListLegalCases(c.UserContext())
	if err != nil {
		return serverError(c, "list legal cases", "Server error", err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: cases})
}

func (h *ConfessionHandler) SubmitLegalAdvice(c *fiber.Ctx) error {
	var req dto.LegalAdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	confession, err := h.service.SubmitLegalAdvice(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return badRequest(c, "All fields required")
		case errors.Is(err, services.ErrInvalidID):
			return badRequest(c, "Invalid ID")
		case errors.Is(err, services.ErrConfessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("Case not found"))
		}
		return serverError(c, "legal advice", "Server error", err)
	}

	return c.JSON(dto.DataResponse{Success: true, Message: "Legal advice submitted", Data: confession})
}
