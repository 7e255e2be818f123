package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// PostgresCheckinStore implements the store.CheckinStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCheckinStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCheckinStore creates a new PostgreSQL implementation of the CheckinStore interface.
func NewPostgresCheckinStore(db store.DBTX, logger *slog.Logger) *PostgresCheckinStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCheckinStore{
		db:     db,
		logger: logger.With(slog.String("component", "checkin_store")),
	}
}

var _ store.CheckinStore = (*PostgresCheckinStore)(nil)

// Create implements store.CheckinStore.Create
func (s *PostgresCheckinStore) Create(ctx context.Context, checkin *domain.DailyCheckin) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkin.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO daily_checkins (id, user_id, energy_level, sleep_hours, available_hours, missed_days, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		checkin.ID,
		checkin.UserID,
		string(checkin.EnergyLevel),
		checkin.SleepHours,
		checkin.AvailableHours,
		checkin.MissedDays,
		checkin.Note,
		checkin.CreatedAt,
	)
	if err != nil {
		log.Error("failed to create check-in",
			slog.String("error", err.Error()),
			slog.String("user_id", checkin.UserID.String()))
		return store.Wrap("checkin", "create", "exec failed", MapError(err))
	}

	log.Debug("check-in saved",
		slog.String("checkin_id", checkin.ID.String()),
		slog.String("user_id", checkin.UserID.String()))
	return nil
}
