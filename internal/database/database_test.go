package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellnessbridge/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openSQLite(t *testing.T) *Store {
	t.Helper()
	s, err := Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func openMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	// gorm pings once on open
	mock.ExpectPing()
	s, err := Open(postgres.New(postgres.Config{Conn: sqlDB}))
	require.NoError(t, err)
	return s, mock
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Connected", Connected.String())
	assert.Equal(t, "Disconnected", Disconnected.String())
	assert.Equal(t, "Connecting", Connecting.String())
	assert.Equal(t, "Disconnecting", Disconnecting.String())
	assert.Equal(t, "Disconnected", State(42).String())
}

func TestOpenAndCloseLifecycle(t *testing.T) {
	s := openSQLite(t)
	assert.True(t, s.Ready())
	assert.Equal(t, Connected, s.State())

	require.NoError(t, s.Close())
	assert.False(t, s.Ready())
	assert.Equal(t, Disconnected, s.State())

	// second close is a no-op
	assert.NoError(t, s.Close())
}

func TestEmailUniqueIndex(t *testing.T) {
	s := openSQLite(t)

	a, err := models.NewUser("A", 20, "f", "dup@example.com", "h", models.RoleVictim)
	require.NoError(t, err)
	b, err := models.NewUser("B", 21, "m", "dup@example.com", "h", models.RoleCounselor)
	require.NoError(t, err)

	require.NoError(t, s.DB.Create(a).Error)
	err = s.DB.Create(b).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestRoleAndAgeChecks(t *testing.T) {
	s := openSQLite(t)

	bad := &models.User{FullName: "A", Age: 20, Gender: "f", Email: "r@example.com", Password: "h", Role: "admin"}
	assert.Error(t, s.DB.Create(bad).Error)

	bad = &models.User{FullName: "A", Age: 0, Gender: "f", Email: "z@example.com", Password: "h", Role: models.RoleLegal}
	assert.Error(t, s.DB.Create(bad).Error)
}

func TestPingUpdatesState(t *testing.T) {
	s, mock := openMock(t)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, s.Ping(context.Background()))
	assert.Equal(t, Disconnected, s.State())

	mock.ExpectPing()
	assert.NoError(t, s.Ping(context.Background()))
	assert.Equal(t, Connected, s.State())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonitorMarksStoreDisconnected(t *testing.T) {
	s, mock := openMock(t)
	// later pings are unexpected and fail too
	mock.ExpectPing().WillReturnError(errors.New("connection reset"))

	s.StartMonitor(10 * time.Millisecond)

	assert.Eventually(t, func() bool { return s.State() == Disconnected }, time.Second, 5*time.Millisecond)

	mock.ExpectClose()
	require.NoError(t, s.Close())
	assert.Equal(t, Disconnected, s.State())
}
