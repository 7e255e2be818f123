package api

import (
	"log/slog"
	"net/http"

	"github.com/planwise/planwise-api/internal/api/shared"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/platform/logger"
	"github.com/planwise/planwise-api/internal/service"
)

// BrainDumpHandler serves confusion dumps and their history.
type BrainDumpHandler struct {
	brainDumps service.BrainDumpService
	logger     *slog.Logger
}

// NewBrainDumpHandler creates a BrainDumpHandler.
func NewBrainDumpHandler(brainDumps service.BrainDumpService, logger *slog.Logger) *BrainDumpHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for BrainDumpHandler")
	}
	return &BrainDumpHandler{
		brainDumps: brainDumps,
		logger:     logger.With(slog.String("component", "brain_dump_handler")),
	}
}

// CreateConfusionDump handles POST /api/confusion-dumps.
// Generation failures map to 503 (unreachable) or 502 (unusable reply).
func (h *BrainDumpHandler) CreateConfusionDump(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	var dump domain.ConfusionDump
	if !decodeAndValidate(w, r, &dump) {
		return
	}

	resp, err := h.brainDumps.Process(r.Context(), userID, dump)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListBrainDumps handles GET /api/brain-dumps.
func (h *BrainDumpHandler) ListBrainDumps(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	userID, ok := requireUserID(w, r, log)
	if !ok {
		return
	}

	dumps, err := h.brainDumps.Recent(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load brain dumps")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dumps)
}
