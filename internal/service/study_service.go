package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// StudyService manages the subjects, assignments and check-ins that feed
// the planner.
type StudyService interface {
	ListSubjects(ctx context.Context, userID uuid.UUID) ([]*domain.SubjectRecord, error)

	// SaveSubject creates or replaces the subject with the given id.
	// Returns ErrNotOwned if the id belongs to another user.
	SaveSubject(ctx context.Context, userID, id uuid.UUID, subject domain.Subject) (*domain.SubjectRecord, error)

	ListAssignments(ctx context.Context, userID uuid.UUID) ([]*domain.AssignmentRecord, error)

	// SaveAssignment creates or replaces the assignment with the given id.
	// Returns ErrNotOwned if the id belongs to another user.
	SaveAssignment(
		ctx context.Context,
		userID, id uuid.UUID,
		assignment domain.Assignment,
	) (*domain.AssignmentRecord, error)

	// RecordCheckin stamps and stores a daily check-in.
	RecordCheckin(ctx context.Context, userID uuid.UUID, checkin domain.DailyCheckin) (*domain.DailyCheckin, error)
}

type studyServiceImpl struct {
	subjects    store.SubjectStore
	assignments store.AssignmentStore
	checkins    store.CheckinStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewStudyService creates a StudyService.
func NewStudyService(
	subjects store.SubjectStore,
	assignments store.AssignmentStore,
	checkins store.CheckinStore,
	logger *slog.Logger,
) (StudyService, error) {
	if subjects == nil || assignments == nil || checkins == nil {
		return nil, &ServiceError{Service: "study", Op: "create_service", Err: errors.New("stores cannot be nil")}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &studyServiceImpl{
		subjects:    subjects,
		assignments: assignments,
		checkins:    checkins,
		logger:      logger.With("component", "study_service"),
		now:         time.Now,
	}, nil
}

// ListSubjects implements StudyService.
func (s *studyServiceImpl) ListSubjects(ctx context.Context, userID uuid.UUID) ([]*domain.SubjectRecord, error) {
	records, err := s.subjects.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrapError("study", "list_subjects", err)
	}
	return records, nil
}

// SaveSubject implements StudyService.
func (s *studyServiceImpl) SaveSubject(
	ctx context.Context,
	userID, id uuid.UUID,
	subject domain.Subject,
) (*domain.SubjectRecord, error) {
	record := &domain.SubjectRecord{ID: id, UserID: userID, Subject: subject, UpdatedAt: s.now().UTC()}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.subjects.Upsert(ctx, record); err != nil {
		if errors.Is(err, store.ErrSubjectNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Warn("subject owned by another user",
				"user_id", userID,
				"subject_id", id)
			return nil, ErrNotOwned
		}
		return nil, wrapError("study", "save_subject", err)
	}
	return record, nil
}

// ListAssignments implements StudyService.
func (s *studyServiceImpl) ListAssignments(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.AssignmentRecord, error) {
	records, err := s.assignments.ListByUser(ctx, userID)
	if err != nil {
		return nil, wrapError("study", "list_assignments", err)
	}
	return records, nil
}

// SaveAssignment implements StudyService.
func (s *studyServiceImpl) SaveAssignment(
	ctx context.Context,
	userID, id uuid.UUID,
	assignment domain.Assignment,
) (*domain.AssignmentRecord, error) {
	record := &domain.AssignmentRecord{ID: id, UserID: userID, Assignment: assignment, UpdatedAt: s.now().UTC()}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.assignments.Upsert(ctx, record); err != nil {
		if errors.Is(err, store.ErrAssignmentNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Warn("assignment owned by another user",
				"user_id", userID,
				"assignment_id", id)
			return nil, ErrNotOwned
		}
		return nil, wrapError("study", "save_assignment", err)
	}
	return record, nil
}

// RecordCheckin implements StudyService.
func (s *studyServiceImpl) RecordCheckin(
	ctx context.Context,
	userID uuid.UUID,
	checkin domain.DailyCheckin,
) (*domain.DailyCheckin, error) {
	c, err := domain.NewDailyCheckin(userID, checkin, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.checkins.Create(ctx, c); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to save check-in",
			"error", err,
			"user_id", userID)
		return nil, wrapError("study", "record_checkin", err)
	}
	return c, nil
}
