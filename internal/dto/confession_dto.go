package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbridge/backend/internal/models"
)

type CreateConfessionRequest struct {
	UserID     string `json:"userId"`
	Category   string `json:"category"`
	Confession string `json:"confession"`
}

type ReplyRequest struct {
	ConfessionID string `json:"confessionId"`
	CounselorID  string `json:"counselorId"`
	Message      string `json:"message"`
}

type LegalAdviceRequest struct {
	CaseID         string `json:"caseId"`
	LegalAdvisorID string `json:"legalAdvisorId"`
	Advice         string `json:"advice"`
}

// AccountSummary is a projection of an account. Only the fields selected for
// a given view are populated; the rest are omitted from JSON.
type AccountSummary struct {
	ID       uuid.UUID `json:"_id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email,omitempty"`
	Age      int       `json:"age,omitempty"`
	Gender   string    `json:"gender,omitempty"`
}

// AccountRef is a reference to an account. It encodes as the bare id until
// resolved, and as the embedded summary afterwards.
type AccountRef struct {
	ID      uuid.UUID
	Summary *AccountSummary
}

func (r AccountRef) MarshalJSON() ([]byte, error) {
	if r.Summary != nil {
		return json.Marshal(r.Summary)
	}
	return json.Marshal(r.ID)
}

func (r *AccountRef) UnmarshalJSON(b []byte) error {
	var id uuid.UUID
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID, r.Summary = id, nil
		return nil
	}
	var s AccountSummary
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	r.ID, r.Summary = s.ID, &s
	return nil
}

// ConfessionView is the read model returned by every listing. A nil UserID
// encodes as null (the author could not be resolved); nil reviewer references
// are omitted.
type ConfessionView struct {
	ID                 uuid.UUID   `json:"_id"`
	UserID             *AccountRef `json:"userId"`
	Category           string      `json:"category"`
	Confession         string      `json:"confession"`
	Status             string      `json:"status"`
	CounselorReply     string      `json:"counselorReply"`
	CounselorID        *AccountRef `json:"counselorId,omitempty"`
	CounselorRepliedAt *time.Time  `json:"counselorRepliedAt,omitempty"`
	LegalAdvice        string      `json:"legalAdvice"`
	LegalAdvisorID     *AccountRef `json:"legalAdvisorId,omitempty"`
	LegalAdvisedAt     *time.Time  `json:"legalAdvisedAt,omitempty"`
	LegalStatus        string      `json:"legalStatus"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// NewConfessionView copies c into a view with every reference unresolved.
func NewConfessionView(c *models.Confession) ConfessionView {
	v := ConfessionView{
		ID:                 c.ID,
		UserID:             &AccountRef{ID: c.UserID},
		Category:           c.Category,
		Confession:         c.Body,
		Status:             c.Status,
		CounselorReply:     c.CounselorReply,
		CounselorRepliedAt: c.CounselorRepliedAt,
		LegalAdvice:        c.LegalAdvice,
		LegalAdvisedAt:     c.LegalAdvisedAt,
		LegalStatus:        c.LegalStatus,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.CounselorID != nil {
		v.CounselorID = &AccountRef{ID: *c.CounselorID}
	}
	if c.LegalAdvisorID != nil {
		v.LegalAdvisorID = &AccountRef{ID: *c.LegalAdvisorID}
	}
	return v
}
