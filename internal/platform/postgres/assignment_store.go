package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// PostgresAssignmentStore implements the store.AssignmentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAssignmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAssignmentStore creates a new PostgreSQL implementation of the AssignmentStore interface.
func NewPostgresAssignmentStore(db store.DBTX, logger *slog.Logger) *PostgresAssignmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAssignmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "assignment_store")),
	}
}

var _ store.AssignmentStore = (*PostgresAssignmentStore)(nil)

// ListByUser implements store.AssignmentStore.ListByUser
func (s *PostgresAssignmentStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.AssignmentRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, title, subject, deadline, priority, estimated_hours, updated_at
		FROM assignments
		WHERE user_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to list assignments",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.Wrap("assignment", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	records := make([]*domain.AssignmentRecord, 0)
	for rows.Next() {
		var r domain.AssignmentRecord
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.Assignment.Title,
			&r.Assignment.Subject,
			&r.Assignment.Deadline,
			&r.Assignment.Priority,
			&r.Assignment.EstimatedHours,
			&r.UpdatedAt,
		); err != nil {
			return nil, store.Wrap("assignment", "list", "scan failed", err)
		}
		records = append(records, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap("assignment", "list", "iteration failed", MapError(err))
	}

	log.Debug("assignments listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(records)))
	return records, nil
}

// Upsert implements store.AssignmentStore.Upsert
func (s *PostgresAssignmentStore) Upsert(ctx context.Context, record *domain.AssignmentRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO assignments (id, user_id, title, subject, deadline, priority, estimated_hours, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			subject = EXCLUDED.subject,
			deadline = EXCLUDED.deadline,
			priority = EXCLUDED.priority,
			estimated_hours = EXCLUDED.estimated_hours,
			updated_at = EXCLUDED.updated_at
		WHERE assignments.user_id = EXCLUDED.user_id
	`
	result, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Assignment.Title,
		record.Assignment.Subject,
		record.Assignment.Deadline,
		string(record.Assignment.Priority),
		record.Assignment.EstimatedHours,
		record.UpdatedAt,
	)
	if err != nil {
		log.Error("failed to upsert assignment",
			slog.String("error", err.Error()),
			slog.String("assignment_id", record.ID.String()))
		return store.Wrap("assignment", "upsert", "exec failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrAssignmentNotFound)
}
