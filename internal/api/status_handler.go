package api

import (
	"net/http"
	"time"

	"github.com/planwise/planwise-api/internal/api/shared"
)

// ServiceName is reported by the root endpoint.
const ServiceName = "Planwise Planner API"

// StatusHandler serves the public liveness endpoints.
type StatusHandler struct {
	now func() time.Time
}

// NewStatusHandler creates a StatusHandler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{now: time.Now}
}

// Root handles GET /.
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Message: ServiceName, Status: "running"})
}

// Health handles GET /health.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: "ok"})
}

// Test handles GET /test.
func (h *StatusHandler) Test(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{
		Message:   "Backend is working!",
		Timestamp: h.now().Format(time.RFC3339),
	})
}
