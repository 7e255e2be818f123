package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/planner"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/store"
)

// TodayRequest is the check-in part of a daily context. Subjects,
// assignments and defaults for the age group and study mode come from storage.
type TodayRequest struct {
	EnergyLevel    domain.EnergyLevel
	SleepHours     float64
	AvailableHours float64
	MissedDays     int
	Note           string
	AgeGroup       *domain.AgeGroup
	StudyMode      *domain.StudyMode
	ConfusionDump  *string
}

// PlanService produces next-step plans.
type PlanService interface {
	// GeneratePlan runs the planner on a caller-supplied context.
	GeneratePlan(ctx context.Context, daily domain.DailyContext) *domain.PlanResponse

	// GenerateTodayPlan records req as today's check-in and plans with the
	// user's stored subjects and assignments.
	GenerateTodayPlan(ctx context.Context, userID uuid.UUID, req TodayRequest) (*domain.PlanResponse, error)
}

type planServiceImpl struct {
	profiles    store.ProfileStore
	subjects    store.SubjectStore
	assignments store.AssignmentStore
	checkins    store.CheckinStore
	logger      *slog.Logger
	now         func() time.Time
}

// NewPlanService creates a PlanService.
func NewPlanService(
	profiles store.ProfileStore,
	subjects store.SubjectStore,
	assignments store.AssignmentStore,
	checkins store.CheckinStore,
	logger *slog.Logger,
) (PlanService, error) {
	if profiles == nil || subjects == nil || assignments == nil || checkins == nil {
		return nil, &ServiceError{Service: "plan", Op: "create_service", Err: errors.New("stores cannot be nil")}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &planServiceImpl{
		profiles:    profiles,
		subjects:    subjects,
		assignments: assignments,
		checkins:    checkins,
		logger:      logger.With("component", "plan_service"),
		now:         time.Now,
	}, nil
}

// GeneratePlan implements PlanService.
func (s *planServiceImpl) GeneratePlan(ctx context.Context, daily domain.DailyContext) *domain.PlanResponse {
	plan := planner.Compose(daily)

	logger.FromContextOrDefault(ctx, s.logger).InfoContext(ctx, "plan generated",
		"rule", plan.Rule,
		"action_type", plan.Response.NextAction.Type,
		"energy_level", daily.EnergyLevel,
		"subjects", len(daily.Subjects),
		"assignments", len(daily.Assignments))

	return &plan.Response
}

// GenerateTodayPlan implements PlanService.
func (s *planServiceImpl) GenerateTodayPlan(
	ctx context.Context,
	userID uuid.UUID,
	req TodayRequest,
) (*domain.PlanResponse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	checkin, err := domain.NewDailyCheckin(userID, domain.DailyCheckin{
		EnergyLevel:    req.EnergyLevel,
		SleepHours:     req.SleepHours,
		AvailableHours: req.AvailableHours,
		MissedDays:     req.MissedDays,
		Note:           req.Note,
	}, s.now())
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
		log.Error("failed to load profile for plan", "error", err, "user_id", userID)
		return nil, wrapError("plan", "load_profile", err)
	}

	subjects, err := s.subjects.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load subjects for plan", "error", err, "user_id", userID)
		return nil, wrapError("plan", "load_subjects", err)
	}
	assignments, err := s.assignments.ListByUser(ctx, userID)
	if err != nil {
		log.Error("failed to load assignments for plan", "error", err, "user_id", userID)
		return nil, wrapError("plan", "load_assignments", err)
	}

	if err := s.checkins.Create(ctx, checkin); err != nil {
		log.Error("failed to record check-in", "error", err, "user_id", userID)
		return nil, wrapError("plan", "record_checkin", err)
	}

	daily := domain.DailyContext{
		Subjects:       make([]domain.Subject, 0, len(subjects)),
		Assignments:    make([]domain.Assignment, 0, len(assignments)),
		SleepHours:     req.SleepHours,
		EnergyLevel:    req.EnergyLevel,
		AvailableHours: req.AvailableHours,
		AgeGroup:       domain.AgeGroupCollege,
		MissedDays:     req.MissedDays,
		ConfusionDump:  req.ConfusionDump,
		StudyMode:      domain.StudyModeStudy,
	}
	for _, r := range subjects {
		daily.Subjects = append(daily.Subjects, r.Subject)
	}
	for _, r := range assignments {
		daily.Assignments = append(daily.Assignments, r.Assignment)
	}
	if profile != nil {
		if profile.AgeGroup != "" {
			daily.AgeGroup = profile.AgeGroup
		}
		if profile.StudyMode != "" {
			daily.StudyMode = profile.StudyMode
		}
	}
	if req.AgeGroup != nil {
		daily.AgeGroup = *req.AgeGroup
	}
	if req.StudyMode != nil {
		daily.StudyMode = *req.StudyMode
	}

	return s.GeneratePlan(ctx, daily), nil
}
