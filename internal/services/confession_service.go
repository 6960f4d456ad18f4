package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbridge/backend/internal/dto"
	"github.com/wellnessbridge/backend/internal/models"
	"gorm.io/gorm"
)

// Account projections used when resolving references.
var (
	authorColumns  = []string{"id", "full_name", "email", "age", "gender"}
	contactColumns = []string{"id", "full_name", "email"}
	nameColumns    = []string{"id", "full_name"}
)

type refField func(v *dto.ConfessionView) **dto.AccountRef

func authorRef(v *dto.ConfessionView) **dto.AccountRef    { return &v.UserID }
func counselorRef(v *dto.ConfessionView) **dto.AccountRef { return &v.CounselorID }
func advisorRef(v *dto.ConfessionView) **dto.AccountRef   { return &v.LegalAdvisorID }

// ConfessionService handles submission, listing and the two review trails.
type ConfessionService struct {
	db *gorm.DB
}

func NewConfessionService(db *gorm.DB) *ConfessionService {
	return &ConfessionService{db: db}
}

func (s *ConfessionService) Create(ctx context.Context, req *dto.CreateConfessionRequest) (*models.Confession, error) {
	if req.UserID == "" || req.Category == "" || req.Confession == "" {
		return nil, ErrMissingFields
	}
	userID, err := parseID("userId", req.UserID)
	if err != nil {
		return nil, err
	}

	confession, err := models.NewConfession(userID, req.Category, req.Confession)
	if err != nil {
		return nil, ErrMissingFields
	}

	if err := s.db.WithContext(ctx).Create(confession).Error; err != nil {
		return nil, fmt.Errorf("failed to create confession: %w", err)
	}
	return confession, nil
}

// List returns every confession, newest first, authors resolved.
func (s *ConfessionService) List(ctx context.Context) ([]dto.ConfessionView, error) {
	views, err := s.find(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, views, authorRef, authorColumns); err != nil {
		return nil, err
	}
	return views, nil
}

// ListByUser returns one author's confessions with reviewer names resolved.
// A malformed id fails before any query runs.
func (s *ConfessionService) ListByUser(ctx context.Context, rawUserID string) ([]dto.ConfessionView, error) {
	userID, err := parseID("userId", rawUserID)
	if err != nil {
		return nil, err
	}

	views, err := s.find(s.db.WithContext(ctx).Where("user_id = ?", userID))
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, views, counselorRef, nameColumns); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, views, advisorRef, nameColumns); err != nil {
		return nil, err
	}
	return views, nil
}

// ListLegalCases returns confessions in a legal-relevant category.
func (s *ConfessionService) ListLegalCases(ctx context.Context) ([]dto.ConfessionView, error) {
	views, err := s.find(s.db.WithContext(ctx).Where("category IN ?", models.LegalCategories))
	if err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, views, authorRef, authorColumns); err != nil {
		return nil, err
	}
	if err := s.resolve(ctx, views, counselorRef, nameColumns); err != nil {
		return nil, err
	}
	return views, nil
}

// Reply records a counselor reply, overwriting any previous one.
func (s *ConfessionService) Reply(ctx context.Context, req *dto.ReplyRequest) (*dto.ConfessionView, error) {
	if req.ConfessionID == "" || req.CounselorID == "" || req.Message == "" {
		return nil, ErrMissingFields
	}
	confessionID, err := parseID("confessionId", req.ConfessionID)
	if err != nil {
		return nil, err
	}
	counselorID, err := parseID("counselorId", req.CounselorID)
	if err != nil {
		return nil, err
	}

	return s.review(ctx, confessionID, map[string]interface{}{
		"counselor_reply":      req.Message,
		"counselor_id":         counselorID,
		"counselor_replied_at": time.Now().UTC(),
		"status":               models.StatusReviewed,
	})
}

// SubmitLegalAdvice records legal advice, overwriting any previous advice.
func (s *ConfessionService) SubmitLegalAdvice(ctx context.Context, req *dto.LegalAdviceRequest) (*dto.ConfessionView, error) {
	if req.CaseID == "" || req.LegalAdvisorID == "" || req.Advice == "" {
		return nil, ErrMissingFields
	}
	caseID, err := parseID("caseId", req.CaseID)
	if err != nil {
		return nil, err
	}
	advisorID, err := parseID("legalAdvisorId", req.LegalAdvisorID)
	if err != nil {
		return nil, err
	}

	return s.review(ctx, caseID, map[string]interface{}{
		"legal_advice":     req.Advice,
		"legal_advisor_id": advisorID,
		"legal_advised_at": time.Now().UTC(),
		"legal_status":     models.StatusReviewed,
	})
}

// review applies updates in a single UPDATE statement, then reloads the row
// with its author resolved.
func (s *ConfessionService) review(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*dto.ConfessionView, error) {
	result := s.db.WithContext(ctx).Model(&models.Confession{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update confession: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrConfessionNotFound
	}

	var confession models.Confession
	if err := s.db.WithContext(ctx).First(&confession, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConfessionNotFound
		}
		return nil, fmt.Errorf("failed to reload confession: %w", err)
	}

	views := []dto.ConfessionView{dto.NewConfessionView(&confession)}
	if err := s.resolve(ctx, views, authorRef, contactColumns); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ConfessionService) find(query *gorm.DB) ([]dto.ConfessionView, error) {
	var confessions []models.Confession
	if err := query.Order("created_at DESC").Find(&confessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list confessions: %w", err)
	}

	views := make([]dto.ConfessionView, len(confessions))
	for i := range confessions {
		views[i] = dto.NewConfessionView(&confessions[i])
	}
	return views, nil
}

// resolve replaces the reference chosen by field with an account projection
// limited to columns. All referenced accounts are loaded in one query;
// references to accounts that no longer exist become nil.
func (s *ConfessionService) resolve(ctx context.Context, views []dto.ConfessionView, field refField, columns []string) error {
	seen := make(map[uuid.UUID]struct{})
	ids := make([]uuid.UUID, 0, len(views))
	for i := range views {
		ref := *field(&views[i])
		if ref == nil {
			continue
		}
		if _, ok := seen[ref.ID]; !ok {
			seen[ref.ID] = struct{}{}
			ids = append(ids, ref.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Model(&models.User{}).Select(columns).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return fmt.Errorf("failed to resolve accounts: %w", err)
	}

	summaries := make(map[uuid.UUID]*dto.AccountSummary, len(users))
	for _, u := range users {
		summaries[u.ID] = &dto.AccountSummary{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Age:      u.Age,
			Gender:   u.Gender,
		}
	}

	for i := range views {
		ref := field(&views[i])
		if *ref == nil {
			continue
		}
		summary, ok := summaries[(*ref).ID]
		if !ok {
			*ref = nil
			continue
		}
		*ref = &dto.AccountRef{ID: summary.ID, Summary: summary}
	}
	return nil
}
