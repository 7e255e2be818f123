package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// PostgresProfileStore implements the store.ProfileStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProfileStore creates a new PostgreSQL implementation of the ProfileStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProfileStore(db store.DBTX, logger *slog.Logger) *PostgresProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

var _ store.ProfileStore = (*PostgresProfileStore)(nil)

const selectProfile = `
		SELECT user_id, display_name, age_group, study_mode, preferences, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

// Get implements store.ProfileStore.Get
func (s *PostgresProfileStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return s.get(ctx, userID, selectProfile)
}

// GetForUpdate implements store.ProfileStore.GetForUpdate
func (s *PostgresProfileStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	return s.get(ctx, userID, selectProfile+"FOR UPDATE")
}

func (s *PostgresProfileStore) get(ctx context.Context, userID uuid.UUID, query string) (*domain.UserProfile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var p domain.UserProfile
	var prefs []byte
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID,
		&p.DisplayName,
		&p.AgeGroup,
		&p.StudyMode,
		&prefs,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("profile not found", slog.String("user_id", userID.String()))
			return nil, store.ErrProfileNotFound
		}
		log.Error("failed to get profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.Wrap("profile", "get", "query failed", MapError(err))
	}

	p.Preferences = map[string]interface{}{}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &p.Preferences); err != nil {
			return nil, store.Wrap("profile", "get", "invalid preferences", err)
		}
	}
	return &p, nil
}

// CreateIfMissing implements store.ProfileStore.CreateIfMissing. A concurrent
// insert for the same user blocks on the primary key until the other
// transaction ends, after which this one does nothing.
func (s *PostgresProfileStore) CreateIfMissing(ctx context.Context, profile *domain.UserProfile) error {
	return s.write(ctx, profile, "create", `
		INSERT INTO user_profiles (user_id, display_name, age_group, study_mode, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO NOTHING
	`)
}

// Upsert implements store.ProfileStore.Upsert
func (s *PostgresProfileStore) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return s.write(ctx, profile, "upsert", `
		INSERT INTO user_profiles (user_id, display_name, age_group, study_mode, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			age_group = EXCLUDED.age_group,
			study_mode = EXCLUDED.study_mode,
			preferences = EXCLUDED.preferences,
			updated_at = EXCLUDED.updated_at
	`)
}

func (s *PostgresProfileStore) write(ctx context.Context, profile *domain.UserProfile, op, query string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	prefs := profile.Preferences
	if prefs == nil {
		prefs = map[string]interface{}{}
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("%w: preferences: %v", store.ErrInvalidEntity, err)
	}

	_, err = s.db.ExecContext(ctx, query,
		profile.UserID,
		profile.DisplayName,
		string(profile.AgeGroup),
		string(profile.StudyMode),
		prefsJSON,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to write profile",
			slog.String("op", op),
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return store.Wrap("profile", op, "exec failed", MapError(err))
	}
	return nil
}

// WithTx implements store.ProfileStore.WithTx
func (s *PostgresProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &PostgresProfileStore{
		db:     tx,
		logger: s.logger,
	}
}
