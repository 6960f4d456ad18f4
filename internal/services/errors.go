package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidRole        = errors.New("role must be victim, counselor or legal")
	ErrInvalidAge         = errors.New("age must be at least 1")
	ErrEmailTaken         = errors.New("user already exists")
	ErrMissingCredentials = errors.New("email and password required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidID          = errors.New("invalid id")
	ErrConfessionNotFound = errors.New("confession not found")
)

// parseID validates an identifier without touching the store.
func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrInvalidID, field)
	}
	return id, nil
}
