package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/planwise/planwise-api/internal/api/shared"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/generation"
	"github.com/planwise/planwise-api/internal/service"
	"github.com/planwise/planwise-api/internal/service/auth"
	"github.com/planwise/planwise-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"wrong token type", fmt.Errorf("validate: %w", auth.ErrWrongTokenType), http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"service not found", service.ErrNotFound, http.StatusNotFound},
		{"store subject not found", store.ErrSubjectNotFound, http.StatusNotFound},
		{"duplicate", store.ErrBrainDumpExists, http.StatusConflict},
		{"validation", domain.NewValidationError("name", "cannot be empty", domain.ErrEmptyContent), http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unavailable", fmt.Errorf("%w: timeout", generation.ErrServiceUnavailable), http.StatusServiceUnavailable},
		{"malformed", fmt.Errorf("%w: not json", generation.ErrMalformedResponse), http.StatusBadGateway},
		{
			"blocked",
			fmt.Errorf("%w: %w", generation.ErrMalformedResponse, generation.ErrContentBlocked),
			http.StatusBadGateway,
		},
		{"wrapped service error", &service.ServiceError{Service: "plan", Op: "load", Err: errors.New("x")}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"expired", auth.ErrExpiredToken, "Token expired"},
		{"not owned", service.ErrNotOwned, "You do not own this resource"},
		{"subject", store.ErrSubjectNotFound, "Subject not found"},
		{"validation field", domain.NewValidationError("energy_level", "must be low, medium or high", domain.ErrValidation),
			"Invalid energy_level: must be low, medium or high"},
		{"unavailable", generation.ErrServiceUnavailable, "The AI service is temporarily unavailable. Please try again."},
		{"malformed", generation.ErrMalformedResponse, "Received an unexpected response from the AI service"},
		{
			"blocked",
			fmt.Errorf("%w: %w", generation.ErrMalformedResponse, generation.ErrContentBlocked),
			"The request could not be processed. Please rephrase and try again.",
		},
		{"raw db error", errors.New("pq: relation user_profiles does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	type sample struct {
		EnergyLevel string `validate:"required,oneof=low medium high"`
		Count       int    `validate:"gte=0"`
	}
	v := validator.New()

	err := v.Struct(sample{EnergyLevel: "extreme"})
	assert.Equal(t, "Invalid energy_level: invalid value", SanitizeValidationError(err))

	err = v.Struct(sample{Count: -1})
	assert.Equal(t, "Invalid energy_level: required field", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}

func TestHandleAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/subjects", nil)
	req = req.WithContext(shared.SetTraceID(req.Context()))
	rec := httptest.NewRecorder()

	HandleAPIError(rec, req, fmt.Errorf("load: %w", errors.New("postgres://admin:pw@db failed")), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "admin")
	assert.Contains(t, rec.Body.String(), shared.GetTraceID(req.Context()))
}
