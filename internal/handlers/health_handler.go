package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wellnessbridge/backend/internal/database"
	"github.com/wellnessbridge/backend/internal/dto"
)

// StateReporter exposes the store's last known connection state.
type StateReporter interface {
	State() database.State
}

type HealthHandler struct {
	store StateReporter
}

func NewHealthHandler(store StateReporter) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check always answers 200; store trouble is reported in the body only.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "Disconnected"
	if h.store.State() == database.Connected {
		dbStatus = "Connected"
	}

	return c.JSON(dto.HealthResponse{
		Success:   true,
		Message:   "WellnessBridge Backend running",
		Database:  dbStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.OK("WellnessBridge Server running"))
}
