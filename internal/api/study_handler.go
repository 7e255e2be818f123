package api

import (
	"log/slog"
	"net/http"

	"github.com/planwise/planwise-api/internal/api/shared"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/service"
)

// StudyHandler serves subjects, assignments and daily check-ins.
type StudyHandler struct {
	study  service.StudyService
	logger *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(study service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StudyHandler")
	}
	return &StudyHandler{
		study:  study,
		logger: logger.With(slog.String("component", "study_handler")),
	}
}

// ListSubjects handles GET /api/subjects.
func (h *StudyHandler) ListSubjects(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	subjects, err := h.study.ListSubjects(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load subjects")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, subjects)
}

// PutSubject handles PUT /api/subjects/{id}.
func (h *StudyHandler) PutSubject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, id, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var subject domain.Subject
	if !decodeAndValidate(w, r, &subject) {
		return
	}

	record, err := h.study.SaveSubject(r.Context(), userID, id, subject)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	log.Debug("subject saved", slog.String("subject_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// ListAssignments handles GET /api/assignments.
func (h *StudyHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	assignments, err := h.study.ListAssignments(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load assignments")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, assignments)
}

// PutAssignment handles PUT /api/assignments/{id}.
func (h *StudyHandler) PutAssignment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, id, ok := handleUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var assignment domain.Assignment
	if !decodeAndValidate(w, r, &assignment) {
		return
	}

	record, err := h.study.SaveAssignment(r.Context(), userID, id, assignment)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	log.Debug("assignment saved", slog.String("assignment_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, record)
}

// CreateCheckin handles POST /api/checkins.
func (h *StudyHandler) CreateCheckin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var req CheckinRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	checkin, err := h.study.RecordCheckin(r.Context(), userID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, checkin)
}
