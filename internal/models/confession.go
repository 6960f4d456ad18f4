package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
)

// LegalCategories are the confession categories routed to legal advisors.
var LegalCategories = []string{"legal", "safety", "child", "financial"}

// IsLegalCategory reports whether category belongs to LegalCategories.
func IsLegalCategory(category string) bool {
	for _, c := range LegalCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Confession is one submitted entry plus its counselor and legal review
// trails. UserID is not a foreign key; it is only format-checked on input.
type Confession struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey" json:"_id"`
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"userId"`
	Category           string     `gorm:"size:50;not null;index" json:"category"`
	Body               string     `gorm:"column:confession;type:text;not null" json:"confession"`
	Status             string     `gorm:"size:20;not null;default:'pending'" json:"status"`
	CounselorReply     string     `gorm:"type:text;not null;default:''" json:"counselorReply"`
	CounselorID        *uuid.UUID `gorm:"type:uuid" json:"counselorId,omitempty"`
	CounselorRepliedAt *time.Time `json:"counselorRepliedAt,omitempty"`
	LegalAdvice        string     `gorm:"type:text;not null;default:''" json:"legalAdvice"`
	LegalAdvisorID     *uuid.UUID `gorm:"type:uuid" json:"legalAdvisorId,omitempty"`
	LegalAdvisedAt     *time.Time `json:"legalAdvisedAt,omitempty"`
	LegalStatus        string     `gorm:"size:20;not null;default:'pending'" json:"legalStatus"`
	CreatedAt          time.Time  `gorm:"index" json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// NewConfession returns an unsaved confession with both review trails at
// their defaults.
func NewConfession(userID uuid.UUID, category, body string) (*Confession, error) {
	category = strings.TrimSpace(category)
	if userID == uuid.Nil || category == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: userId, category and confession are required", ErrValidation)
	}

	return &Confession{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       category,
		Body:           body,
		Status:         StatusPending,
		CounselorReply: "",
		LegalAdvice:    "",
		LegalStatus:    StatusPending,
	}, nil
}

func (c *Confession) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
