package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wellnessbridge/backend/internal/config"
	"github.com/wellnessbridge/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// State mirrors the connection lifecycle. Values follow the numbering used by
// common document-store clients so they can be reported as-is.
type State int32

const (
	Disconnected State = iota
	Connected
	Connecting
	Disconnecting
)

func (s State) String() string {
	switch s {
	case Connected:
		return "Connected"
	case Connecting:
		return "Connecting"
	case Disconnecting:
		return "Disconnecting"
	default:
		return "Disconnected"
	}
}

// Store is the process-wide database handle.
type Store struct {
	DB *gorm.DB

	state    atomic.Int32
	stopOnce sync.Once
	done     chan struct{}
	wg       sync.WaitGroup
}

// Connect opens the PostgreSQL store described by cfg.
func Connect(cfg *config.Config) (*Store, error) {
	s, err := Open(postgres.Open(cfg.DSN()))
	if err != nil {
		return nil, err
	}

	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return s, nil
}

// Open wraps an arbitrary GORM dialector. Foreign keys are not created on
// migration: references between collections are format-checked only.
func Open(dialector gorm.Dialector) (*Store, error) {
	s := &Store{done: make(chan struct{})}
	s.state.Store(int32(Connecting))

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		s.state.Store(int32(Disconnected))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s.DB = db
	s.state.Store(int32(Connected))
	return s, nil
}

// Migrate runs AutoMigrate for every persisted model.
func (s *Store) Migrate() error {
	return s.DB.AutoMigrate(
		&models.User{},
		&models.Confession{},
		&models.SystemLog{},
	)
}

// State returns the last observed connection state without a round-trip.
func (s *Store) State() State {
	return State(s.state.Load())
}

// Ready reports whether the store is in the Connected state.
func (s *Store) Ready() bool {
	return s.State() == Connected
}

// Ping performs an active round-trip and records the outcome.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	err = sqlDB.PingContext(ctx)
	if s.State() == Disconnecting {
		return err
	}
	if err != nil {
		s.state.Store(int32(Disconnected))
	} else {
		s.state.Store(int32(Connected))
	}
	return err
}

// StartMonitor pings the store every interval until Close is called, keeping
// State current. Reconnection itself is left to database/sql.
func (s *Store) StartMonitor(interval time.Duration) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				prev := s.State()
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				err := s.Ping(ctx)
				cancel()
				if cur := s.State(); cur != prev {
					if err != nil {
						slog.Error("database connection lost", "error", err)
					} else {
						slog.Info("database connection restored")
					}
				}
			case <-s.done:
				return
			}
		}
	}()
}

// Close stops the monitor and closes the underlying pool.
func (s *Store) Close() error {
	var err error
	s.stopOnce.Do(func() {
		s.state.Store(int32(Disconnecting))
		close(s.done)
		s.wg.Wait()

		sqlDB, dbErr := s.DB.DB()
		if dbErr != nil {
			err = dbErr
		} else {
			err = sqlDB.Close()
		}
		s.state.Store(int32(Disconnected))
	})
	return err
}
