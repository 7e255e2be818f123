package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// PostgresBrainDumpStore implements the store.BrainDumpStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBrainDumpStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBrainDumpStore creates a new PostgreSQL implementation of the BrainDumpStore interface.
func NewPostgresBrainDumpStore(db store.DBTX, logger *slog.Logger) *PostgresBrainDumpStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresBrainDumpStore{
		db:     db,
		logger: logger.With(slog.String("component", "brain_dump_store")),
	}
}

var _ store.BrainDumpStore = (*PostgresBrainDumpStore)(nil)

// Create implements store.BrainDumpStore.Create
func (s *PostgresBrainDumpStore) Create(ctx context.Context, dump *domain.BrainDump) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := dump.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	response, err := json.Marshal(dump.Response)
	if err != nil {
		return fmt.Errorf("%w: response: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO brain_dumps (id, user_id, original_text, age_group, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query,
		dump.ID,
		dump.UserID,
		dump.OriginalText,
		string(dump.AgeGroup),
		response,
		dump.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrBrainDumpExists
		}
		log.Error("failed to create brain dump",
			slog.String("error", err.Error()),
			slog.String("brain_dump_id", dump.ID.String()))
		return store.Wrap("brain_dump", "create", "exec failed", MapError(err))
	}

	log.Info("brain dump saved",
		slog.String("brain_dump_id", dump.ID.String()),
		slog.String("user_id", dump.UserID.String()))
	return nil
}

// ListRecent implements store.BrainDumpStore.ListRecent
func (s *PostgresBrainDumpStore) ListRecent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.BrainDump, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		return []*domain.BrainDump{}, nil
	}

	query := `
		SELECT id, user_id, original_text, age_group, response, created_at
		FROM brain_dumps
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to list brain dumps",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, store.Wrap("brain_dump", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	dumps := make([]*domain.BrainDump, 0, limit)
	for rows.Next() {
		var d domain.BrainDump
		var response []byte
		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.OriginalText,
			&d.AgeGroup,
			&response,
			&d.CreatedAt,
		); err != nil {
			return nil, store.Wrap("brain_dump", "list", "scan failed", err)
		}
		if err := json.Unmarshal(response, &d.Response); err != nil {
			return nil, store.Wrap("brain_dump", "list", "invalid response payload", err)
		}
		dumps = append(dumps, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, store.Wrap("brain_dump", "list", "iteration failed", MapError(err))
	}
	return dumps, nil
}
