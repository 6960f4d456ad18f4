package logging

import (
	"log/slog"
	"time"

	"github.com/wellnessbridge/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PurgeOlderThan deletes system_logs older than retention and returns the
// number of rows removed.
func PurgeOlderThan(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := db.Where(clause.Lt{Column: clause.Column{Name: "timestamp"}, Value: cutoff}).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// StartCleanup purges expired system_logs once a day until done is closed.
func StartCleanup(db *gorm.DB, retention time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := PurgeOlderThan(db, retention)
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}
