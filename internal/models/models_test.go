package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser(" Jane Doe ", 30, "female", " jane@example.com ", "hash", RoleVictim)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "Jane Doe", u.FullName)
	assert.Equal(t, "jane@example.com", u.Email)
	assert.Equal(t, RoleVictim, u.Role)
}

func TestNewUserRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		age      int
		gender   string
		email    string
		hash     string
		role     string
	}{
		{"missing name", "", 30, "f", "a@b.c", "h", RoleVictim},
		{"blank gender", "A", 30, "  ", "a@b.c", "h", RoleVictim},
		{"missing email", "A", 30, "f", "", "h", RoleVictim},
		{"missing hash", "A", 30, "f", "a@b.c", "", RoleVictim},
		{"zero age", "A", 0, "f", "a@b.c", "h", RoleVictim},
		{"negative age", "A", -3, "f", "a@b.c", "h", RoleVictim},
		{"unknown role", "A", 30, "f", "a@b.c", "h", "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.fullName, tt.age, tt.gender, tt.email, tt.hash, tt.role)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewConfessionDefaults(t *testing.T) {
	author := uuid.New()
	c, err := NewConfession(author, "legal", "something happened")
	require.NoError(t, err)

	assert.Equal(t, author, c.UserID)
	assert.Equal(t, StatusPending, c.Status)
	assert.Equal(t, StatusPending, c.LegalStatus)
	assert.Empty(t, c.CounselorReply)
	assert.Empty(t, c.LegalAdvice)
	assert.Nil(t, c.CounselorID)
	assert.Nil(t, c.LegalAdvisorID)
	assert.Nil(t, c.CounselorRepliedAt)
	assert.Nil(t, c.LegalAdvisedAt)
}

func TestNewConfessionRequiresFields(t *testing.T) {
	_, err := NewConfession(uuid.Nil, "legal", "x")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewConfession(uuid.New(), " ", "x")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewConfession(uuid.New(), "legal", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIsLegalCategory(t *testing.T) {
	for _, c := range []string{"legal", "safety", "child", "financial"} {
		assert.True(t, IsLegalCategory(c), c)
	}
	assert.False(t, IsLegalCategory("other"))
	assert.False(t, IsLegalCategory("Legal"))
}
