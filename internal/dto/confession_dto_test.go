package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellnessbridge/backend/internal/models"
)

func TestAccountRefEncoding(t *testing.T) {
	id := uuid.MustParse("7d9f4c1e-3a52-4d0b-9a0e-1f2b3c4d5e6f")

	b, err := json.Marshal(AccountRef{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `"7d9f4c1e-3a52-4d0b-9a0e-1f2b3c4d5e6f"`, string(b))

	b, err = json.Marshal(AccountRef{ID: id, Summary: &AccountSummary{ID: id, FullName: "Dr. Who"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"7d9f4c1e-3a52-4d0b-9a0e-1f2b3c4d5e6f","fullName":"Dr. Who"}`, string(b))

	var ref AccountRef
	require.NoError(t, json.Unmarshal(b, &ref))
	assert.Equal(t, id, ref.ID)
	require.NotNil(t, ref.Summary)
	assert.Equal(t, "Dr. Who", ref.Summary.FullName)
}

func TestNewConfessionView(t *testing.T) {
	author, counselor := uuid.New(), uuid.New()
	now := time.Now()
	c := &models.Confession{
		ID:                 uuid.New(),
		UserID:             author,
		Category:           "safety",
		Body:               "text",
		Status:             models.StatusReviewed,
		CounselorReply:     "hang in there",
		CounselorID:        &counselor,
		CounselorRepliedAt: &now,
		LegalStatus:        models.StatusPending,
	}

	v := NewConfessionView(c)
	assert.Equal(t, author, v.UserID.ID)
	assert.Nil(t, v.UserID.Summary)
	require.NotNil(t, v.CounselorID)
	assert.Equal(t, counselor, v.CounselorID.ID)
	assert.Nil(t, v.LegalAdvisorID)

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &raw))
	assert.Equal(t, author.String(), raw["userId"])
	assert.Equal(t, "text", raw["confession"])
	assert.NotContains(t, raw, "legalAdvisorId")
}
