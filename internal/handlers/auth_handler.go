package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnessbridge/backend/internal/dto"
	"github.com/wellnessbridge/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.Signup(c.UserContext(), &req); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return badRequest(c, "All fields are required")
		case errors.Is(err, services.ErrInvalidRole):
			return badRequest(c, "Role must be one of victim, counselor, legal")
		case errors.Is(err, services.ErrInvalidAge):
			return badRequest(c, "Age must be at least 1")
		case errors.Is(err, services.ErrEmailTaken):
			return badRequest(c, "User already exists")
		}
		return serverError(c, "signup", "Server error during signup", err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK("User created successfully"))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			return badRequest(c, "Email and password required")
		case errors.Is(err, services.ErrInvalidCredentials):
			return badRequest(c, "Invalid email or password")
		}
		return serverError(c, "login", "Server error during login", err)
	}

	return c.JSON(resp)
}
