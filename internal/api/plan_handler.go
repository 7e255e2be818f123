package api

import (
	"log/slog"
	"net/http"

	"github.com/planwise/planwise-api/internal/api/shared"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/service"
)

// PlanHandler serves next-action plans.
type PlanHandler struct {
	planService service.PlanService
	logger      *slog.Logger
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(planService service.PlanService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlanHandler")
	}
	return &PlanHandler{
		planService: planService,
		logger:      logger.With(slog.String("component", "plan_handler")),
	}
}

// GeneratePlan handles POST /api/plans. The body is a full DailyContext.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	if _, ok := requireUserID(w, r, log); !ok {
		return
	}

	var daily domain.DailyContext
	if !decodeAndValidate(w, r, &daily) {
		return
	}

	plan := h.planService.GeneratePlan(r.Context(), daily)
	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}

// GenerateTodayPlan handles POST /api/plans/today.
func (h *PlanHandler) GenerateTodayPlan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req TodayPlanRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	plan, err := h.planService.GenerateTodayPlan(r.Context(), userID, req.toService())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, plan)
}
