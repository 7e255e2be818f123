package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// RecentBrainDumpLimit is how many brain dumps Recent returns.
const RecentBrainDumpLimit = 5

// ConfusionHandler turns a confusion dump into structured guidance.
type ConfusionHandler interface {
	Handle(ctx context.Context, dump domain.ConfusionDump) (*domain.ConfusionResponse, error)
}

// BrainDumpService processes and records confusion dumps.
type BrainDumpService interface {
	// Process handles dump and stores the result as a BrainDump.
	Process(ctx context.Context, userID uuid.UUID, dump domain.ConfusionDump) (*domain.ConfusionResponse, error)

	// Recent returns the newest brain dumps of userID.
	Recent(ctx context.Context, userID uuid.UUID) ([]*domain.BrainDump, error)
}

type brainDumpServiceImpl struct {
	handler ConfusionHandler
	dumps   store.BrainDumpStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewBrainDumpService creates a BrainDumpService.
func NewBrainDumpService(
	handler ConfusionHandler,
	dumps store.BrainDumpStore,
	logger *slog.Logger,
) (BrainDumpService, error) {
	if handler == nil {
		return nil, &ServiceError{Service: "brain_dump", Op: "create_service", Err: errors.New("handler cannot be nil")}
	}
	if dumps == nil {
		return nil, &ServiceError{Service: "brain_dump", Op: "create_service", Err: errors.New("store cannot be nil")}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &brainDumpServiceImpl{
		handler: handler,
		dumps:   dumps,
		logger:  logger.With("component", "brain_dump_service"),
		now:     time.Now,
	}, nil
}

// Process implements BrainDumpService.
// Blank text is rejected before the handler runs. Handler errors are returned unchanged so callers can tell generation
// failures apart. A response that cannot be stored is not returned.
func (s *brainDumpServiceImpl) Process(
	ctx context.Context,
	userID uuid.UUID,
	dump domain.ConfusionDump,
) (*domain.ConfusionResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if strings.TrimSpace(dump.Confusion) == "" {
		return nil, domain.NewValidationError("confusion", "cannot be empty", domain.ErrEmptyContent)
	}

	resp, err := s.handler.Handle(ctx, dump)
	if err != nil {
		return nil, err
	}

	record, err := domain.NewBrainDump(userID, dump, *resp, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.dumps.Create(ctx, record); err != nil {
		log.Error("failed to save brain dump",
			"error", err,
			"user_id", userID,
			"brain_dump_id", record.ID)
		return nil, wrapError("brain_dump", "save", err)
	}

	log.Info("brain dump processed",
		"user_id", userID,
		"brain_dump_id", record.ID,
		"action_items", len(resp.ActionItems))
	return resp, nil
}

// Recent implements BrainDumpService.
func (s *brainDumpServiceImpl) Recent(ctx context.Context, userID uuid.UUID) ([]*domain.BrainDump, error) {
	dumps, err := s.dumps.ListRecent(ctx, userID, RecentBrainDumpLimit)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list brain dumps",
			"error", err,
			"user_id", userID)
		return nil, wrapError("brain_dump", "list", err)
	}
	return dumps, nil
}
