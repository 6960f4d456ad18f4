package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wellnessbridge/backend/internal/dto"
	"github.com/wellnessbridge/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles signup and password login. It issues no tokens: the
// login response is the only thing a caller gets back.
type AuthService struct {
	db   *gorm.DB
	cost int
}

func NewAuthService(db *gorm.DB, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{db: db, cost: bcryptCost}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) error {
	email := strings.TrimSpace(req.Email)
	if req.FullName == "" || req.Age == 0 || req.Gender == "" || email == "" || req.Password == "" || req.Role == "" {
		return ErrMissingFields
	}
	if !models.ValidRole(req.Role) {
		return ErrInvalidRole
	}
	if req.Age < 1 {
		return ErrInvalidAge
	}

	var existing models.User
	err := s.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := models.NewUser(req.FullName, req.Age, req.Gender, email, string(hash), req.Role)
	if err != nil {
		return ErrMissingFields
	}

	// The unique index catches a concurrent signup that passed the check above.
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Role:    user.Role,
		User: dto.UserResponse{
			ID:       user.ID,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}
