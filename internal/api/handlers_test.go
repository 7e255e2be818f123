package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/planwise/planwise-api/internal/api/middleware"
	"github.com/planwise/planwise-api/internal/api/shared"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/tone"
	"github.com/planwise/planwise-api/internal/generation"
	"github.com/planwise/planwise-api/internal/mocks"
	"github.com/planwise/planwise-api/internal/service"
	"github.com/planwise/planwise-api/internal/service/confusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const confusionReply = `{
  "calm_response": "You're doing fine. Let's slow down.",
  "action_items": ["Re-read section 2", "Ask one question in class", "Do two practice problems"],
  "plan_adjustment": "Swap tonight's new chapter for revision."
}`

type testServer struct {
	router      http.Handler
	userID      uuid.UUID
	generator   *mocks.MockTextGenerator
	brainDumps  *mocks.MockBrainDumpStore
	subjects    *mocks.MockSubjectStore
	assignments *mocks.MockAssignmentStore
	checkins    *mocks.MockCheckinStore
	sqlMock     sqlmock.Sqlmock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ts := &testServer{
		userID:      uuid.New(),
		generator:   mocks.NewMockTextGeneratorWithReply(confusionReply),
		brainDumps:  &mocks.MockBrainDumpStore{},
		subjects:    &mocks.MockSubjectStore{},
		assignments: &mocks.MockAssignmentStore{},
		checkins:    &mocks.MockCheckinStore{},
		sqlMock:     sqlMock,
	}
	profiles := mocks.NewMockProfileStore()

	planSvc, err := service.NewPlanService(profiles, ts.subjects, ts.assignments, ts.checkins, log)
	require.NoError(t, err)
	handler, err := confusion.NewHandler(ts.generator, log)
	require.NoError(t, err)
	brainDumpSvc, err := service.NewBrainDumpService(handler, ts.brainDumps, log)
	require.NoError(t, err)
	profileSvc, err := service.NewProfileService(db, profiles, log)
	require.NoError(t, err)
	studySvc, err := service.NewStudyService(ts.subjects, ts.assignments, ts.checkins, log)
	require.NoError(t, err)

	plans := NewPlanHandler(planSvc, log)
	dumps := NewBrainDumpHandler(brainDumpSvc, log)
	profile := NewProfileHandler(profileSvc, log)
	study := NewStudyHandler(studySvc, log)
	status := NewStatusHandler()
	authMW := middleware.NewAuthMiddleware(mocks.NewMockJWTServiceForUser(ts.userID))

	r := chi.NewRouter()
	r.Use(middleware.Trace(log))
	r.Get("/", status.Root)
	r.Get("/health", status.Health)
	r.Get("/test", status.Test)
	r.Route("/api", func(r chi.Router) {
		r.Use(authMW.Authenticate)
		r.Post("/plans", plans.GeneratePlan)
		r.Post("/plans/today", plans.GenerateTodayPlan)
		r.Post("/confusion-dumps", dumps.CreateConfusionDump)
		r.Get("/brain-dumps", dumps.ListBrainDumps)
		r.Get("/profile", profile.GetProfile)
		r.Put("/profile", profile.UpdateProfile)
		r.Get("/subjects", study.ListSubjects)
		r.Put("/subjects/{id}", study.PutSubject)
		r.Get("/assignments", study.ListAssignments)
		r.Put("/assignments/{id}", study.PutAssignment)
		r.Post("/checkins", study.CreateCheckin)
	})
	ts.router = r
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestStatusEndpoints(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/", "/health", "/test"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			ts.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(shared.TraceIDHeader))
		})
	}

	rec := ts.do(t, http.MethodGet, "/health", "")
	var resp StatusResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "ok", resp.Status)
}

func TestGeneratePlanEndpoint(t *testing.T) {
	ts := newTestServer(t)

	t.Run("scenario with high energy and a high priority assignment", func(t *testing.T) {
		body := `{
			"subjects": [{"name": "Math", "credits": 4}],
			"assignments": [{"title": "Essay", "subject": "English", "deadline": "2025-04-01", "priority": "high"}],
			"sleep_hours": 8, "energy_level": "high", "available_hours": 5, "age_group": "class8"
		}`
		rec := ts.do(t, http.MethodPost, "/api/plans", body)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp domain.PlanResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Work on Essay", resp.NextAction.Task)
		assert.Equal(t, 90, resp.NextAction.Duration)
		assert.Equal(t, domain.DifficultyHard, resp.NextAction.Difficulty)
		assert.Nil(t, resp.RecoveryMessage)
		require.NotNil(t, resp.ConfidenceBoost)
	})

	t.Run("recovery message appears after missed days", func(t *testing.T) {
		body := `{"subjects": [], "assignments": [], "sleep_hours": 6, "energy_level": "medium",
			"available_hours": 3, "age_group": "college", "missed_days": 2}`
		rec := ts.do(t, http.MethodPost, "/api/plans", body)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp domain.PlanResponse
		decodeBody(t, rec, &resp)
		require.NotNil(t, resp.RecoveryMessage)
		assert.Equal(t, "Plan tomorrow's work", resp.NextAction.Task)
	})

	t.Run("invalid energy level", func(t *testing.T) {
		body := `{"subjects": [], "assignments": [], "sleep_hours": 6, "energy_level": "extreme", "available_hours": 3}`
		rec := ts.do(t, http.MethodPost, "/api/plans", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp shared.ErrorResponse
		decodeBody(t, rec, &resp)
		assert.Contains(t, resp.Error, "energy_level")
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("malformed json", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/plans", `{"subjects": [`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTodayPlanEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, ts.assignments.Upsert(ctx, &domain.AssignmentRecord{
		ID:         uuid.New(),
		UserID:     ts.userID,
		Assignment: domain.Assignment{Title: "Worksheet", Priority: domain.PriorityLow, EstimatedHours: 1},
	}))

	rec := ts.do(t, http.MethodPost, "/api/plans/today",
		`{"energy_level": "medium", "sleep_hours": 7, "available_hours": 3, "missed_days": 1}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp domain.PlanResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Finish Worksheet (easy win)", resp.NextAction.Task)
	assert.Equal(t, domain.ActionRecovery, resp.NextAction.Type)
	assert.Equal(t, 1, ts.checkins.Count())
}

func TestConfusionDumpEndpoint(t *testing.T) {
	t.Run("success stores a brain dump", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(t, http.MethodPost, "/api/confusion-dumps",
			`{"confusion": "I can't follow the integration lecture", "age_group": "college"}`)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp domain.ConfusionResponse
		decodeBody(t, rec, &resp)
		assert.Len(t, resp.ActionItems, 3)
		assert.Equal(t, 1, ts.brainDumps.Count())

		rec = ts.do(t, http.MethodGet, "/api/brain-dumps", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var dumps []domain.BrainDump
		decodeBody(t, rec, &dumps)
		require.Len(t, dumps, 1)
		assert.Equal(t, "I can't follow the integration lecture", dumps[0].OriginalText)
	})

	testCases := []struct {
		name       string
		reply      string
		err        error
		body       string
		wantStatus int
	}{
		{
			name:       "generator unavailable",
			err:        generation.ErrServiceUnavailable,
			body:       `{"confusion": "help", "age_group": "class3"}`,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "reply is not json",
			reply:      "Sure! Here are some tips.",
			body:       `{"confusion": "help", "age_group": "class3"}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "too many action items",
			reply:      `{"calm_response": "a", "action_items": ["1", "2", "3", "4"], "plan_adjustment": "b"}`,
			body:       `{"confusion": "help", "age_group": "class3"}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "empty confusion",
			reply:      confusionReply,
			body:       `{"confusion": "", "age_group": "class3"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.generator.Reply = tc.reply
			ts.generator.Err = tc.err

			rec := ts.do(t, http.MethodPost, "/api/confusion-dumps", tc.body)

			assert.Equal(t, tc.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, 0, ts.brainDumps.Count())
			var resp shared.ErrorResponse
			decodeBody(t, rec, &resp)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile domain.UserProfile
	decodeBody(t, rec, &profile)
	assert.Equal(t, ts.userID, profile.UserID)
	assert.Equal(t, domain.AgeGroupCollege, profile.AgeGroup)

	ts.sqlMock.ExpectBegin()
	ts.sqlMock.ExpectCommit()
	rec = ts.do(t, http.MethodPut, "/api/profile",
		`{"display_name": "Ravi", "age_group": "class12", "preferences": {"theme": "dark"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeBody(t, rec, &profile)
	assert.Equal(t, "Ravi", profile.DisplayName)
	assert.Equal(t, domain.AgeGroupClass12, profile.AgeGroup)

	rec = ts.do(t, http.MethodPut, "/api/profile", `{"study_mode": "cramming"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NoError(t, ts.sqlMock.ExpectationsWereMet())
}

func TestProfileUnknownAgeGroupPlansWithCollegeTone(t *testing.T) {
	ts := newTestServer(t)

	ts.sqlMock.ExpectBegin()
	ts.sqlMock.ExpectCommit()
	rec := ts.do(t, http.MethodPut, "/api/profile", `{"age_group": "kindergarten"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var profile domain.UserProfile
	decodeBody(t, rec, &profile)
	assert.Equal(t, domain.AgeGroup("kindergarten"), profile.AgeGroup)

	rec = ts.do(t, http.MethodPost, "/api/plans/today",
		`{"energy_level": "medium", "sleep_hours": 7, "available_hours": 3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var plan domain.PlanResponse
	decodeBody(t, rec, &plan)
	require.NotNil(t, plan.ConfidenceBoost)
	assert.Equal(t, tone.Resolve(domain.AgeGroupCollege).Encouragement, *plan.ConfidenceBoost)

	assert.NoError(t, ts.sqlMock.ExpectationsWereMet())
}

func TestProfileSave_TransactionFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.sqlMock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	rec := ts.do(t, http.MethodPut, "/api/profile", `{"display_name": "Ravi"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp shared.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Failed to save profile", resp.Error)
	assert.NotContains(t, rec.Body.String(), "connection")
}

func TestSubjectEndpoints(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	rec := ts.do(t, http.MethodPut, "/api/subjects/"+id.String(),
		`{"name": "Physics", "credits": 3, "last_studied": "2025-03-10"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var record domain.SubjectRecord
	decodeBody(t, rec, &record)
	assert.Equal(t, domain.DefaultConfidenceLevel, record.Subject.ConfidenceLevel)

	rec = ts.do(t, http.MethodGet, "/api/subjects", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.SubjectRecord
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Physics", list[0].Subject.Name)

	t.Run("bad id", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/subjects/not-a-uuid", `{"name": "Physics", "credits": 3}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owned by someone else", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, ts.subjects.Upsert(context.Background(), &domain.SubjectRecord{
			ID:      other,
			UserID:  uuid.New(),
			Subject: domain.Subject{Name: "Chemistry", ConfidenceLevel: 5},
		}))
		rec := ts.do(t, http.MethodPut, "/api/subjects/"+other.String(), `{"name": "Mine now", "credits": 1}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("confidence out of range", func(t *testing.T) {
		rec := ts.do(t, http.MethodPut, "/api/subjects/"+uuid.NewString(),
			`{"name": "Art", "credits": 1, "confidence_level": 12}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAssignmentEndpoints(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	rec := ts.do(t, http.MethodPut, "/api/assignments/"+id.String(),
		`{"title": "Lab 4", "subject": "Biology", "deadline": "2025-04-02", "priority": "medium"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var record domain.AssignmentRecord
	decodeBody(t, rec, &record)
	assert.Equal(t, domain.DefaultEstimatedHours, record.Assignment.EstimatedHours)

	rec = ts.do(t, http.MethodGet, "/api/assignments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []domain.AssignmentRecord
	decodeBody(t, rec, &list)
	assert.Len(t, list, 1)
}

func TestCheckinEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/checkins",
		`{"energy_level": "low", "sleep_hours": 5, "available_hours": 2, "note": "rough night"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var checkin domain.DailyCheckin
	decodeBody(t, rec, &checkin)
	assert.Equal(t, ts.userID, checkin.UserID)
	assert.False(t, checkin.CreatedAt.IsZero())

	rec = ts.do(t, http.MethodPost, "/api/checkins", `{"energy_level": "low", "missed_days": -2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 1, ts.checkins.Count())
}
