package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrValidation is wrapped by every constructor-time validation failure.
var ErrValidation = errors.New("validation failed")

const (
	RoleVictim    = "victim"
	RoleCounselor = "counselor"
	RoleLegal     = "legal"
)

// Roles lists every role an account may hold.
var Roles = []string{RoleVictim, RoleCounselor, RoleLegal}

// ValidRole reports whether r is one of Roles.
func ValidRole(r string) bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// User is a registered account. Accounts are immutable after signup.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"size:255;not null" json:"fullName"`
	Age       int       `gorm:"not null;check:chk_users_age,age >= 1" json:"age"`
	Gender    string    `gorm:"size:50;not null" json:"gender"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"size:20;not null;check:chk_users_role,role IN ('victim','counselor','legal')" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUser validates the signup fields and returns an unsaved account.
// passwordHash must already be hashed.
func NewUser(fullName string, age int, gender, email, passwordHash, role string) (*User, error) {
	fullName = strings.TrimSpace(fullName)
	gender = strings.TrimSpace(gender)
	email = strings.TrimSpace(email)

	if fullName == "" || gender == "" || email == "" || passwordHash == "" || role == "" {
		return nil, fmt.Errorf("%w: all fields are required", ErrValidation)
	}
	if age < 1 {
		return nil, fmt.Errorf("%w: age must be at least 1", ErrValidation)
	}
	if !ValidRole(role) {
		return nil, fmt.Errorf("%w: role must be one of %s", ErrValidation, strings.Join(Roles, ", "))
	}

	return &User{
		ID:       uuid.New(),
		FullName: fullName,
		Age:      age,
		Gender:   gender,
		Email:    email,
		Password: passwordHash,
		Role:     role,
	}, nil
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
