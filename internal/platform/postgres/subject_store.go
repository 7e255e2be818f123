package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// PostgresSubjectStore implements the store.SubjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSubjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubjectStore creates a new PostgreSQL implementation of the SubjectStore interface.
func NewPostgresSubjectStore(db store.DBTX, logger *slog.Logger) *PostgresSubjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSubjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "subject_store")),
	}
}

var _ store.SubjectStore = (*PostgresSubjectStore)(nil)

// ListByUser implements store.SubjectStore.ListByUser
func (s *PostgresSubjectStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SubjectRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, name, credits, last_studied, confidence_level, revision_count, updated_at
		FROM subjects
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list subjects",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.Wrap("subject", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	records := make([]*domain.SubjectRecord, 0)
	for rows.Next() {
		var r domain.SubjectRecord
		var lastStudied sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Subject.Name,
			&r.Subject.Credits,
			&lastStudied,
			&r.Subject.ConfidenceLevel,
			&r.Subject.RevisionCount,
			&r.UpdatedAt,
		); err != nil {
			return nil, store.Wrap("subject", "list", "scan failed", err)
		}
		if lastStudied.Valid {
			v := lastStudied.String
			r.Subject.LastStudied = &v
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap("subject", "list", "iteration failed", MapError(err))
	}

	log.Debug("subjects listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(records)))
	return records, nil
}

// Upsert implements store.SubjectStore.Upsert
// The conflict update is restricted to rows owned by the same user, so an ID
// belonging to someone else affects no rows and reports ErrSubjectNotFound.
func (s *PostgresSubjectStore) Upsert(ctx context.Context, record *domain.SubjectRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	var lastStudied sql.NullString
	if record.Subject.LastStudied != nil {
		lastStudied = sql.NullString{String: *record.Subject.LastStudied, Valid: true}
	}

	query := `
		INSERT INTO subjects (id, user_id, name, credits, last_studied, confidence_level, revision_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			credits = EXCLUDED.credits,
			last_studied = EXCLUDED.last_studied,
			confidence_level = EXCLUDED.confidence_level,
			revision_count = EXCLUDED.revision_count,
			updated_at = EXCLUDED.updated_at
		WHERE subjects.user_id = EXCLUDED.user_id
	`
	result, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Subject.Name,
		record.Subject.Credits,
		lastStudied,
		record.Subject.ConfidenceLevel,
		record.Subject.RevisionCount,
		record.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", record.ID.String()))
		return store.Wrap("subject", "upsert", "exec failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrSubjectNotFound)
}
