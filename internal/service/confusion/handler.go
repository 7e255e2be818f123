// Package confusion turns a student's free-text confusion into a calm,
// structured response using an injected text generator.
package confusion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/planwise/planwise-api/internal/domain"
	"github.com/planwise/planwise-api/internal/domain/tone"
	"github.com/planwise/planwise-api/internal/generation"
)

// Handler converts ConfusionDumps into ConfusionResponses.
type Handler struct {
	generator generation.TextGenerator
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewHandler creates a Handler that uses generator for every request.
func NewHandler(generator generation.TextGenerator, logger *slog.Logger) (*Handler, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		generator: generator,
		validate:  validator.New(),
		logger:    logger.With("component", "confusion_handler"),
	}, nil
}

// Handle resolves the tone for dump, asks the generator for guidance and
// validates the reply.
//
// Generator failures wrap generation.ErrServiceUnavailable. Replies that are
// not JSON or do not match the expected shape wrap generation.ErrMalformedResponse.
func (h *Handler) Handle(ctx context.Context, dump domain.ConfusionDump) (*domain.ConfusionResponse, error) {
	prompt, err := buildPrompt(dump, tone.Resolve(dump.AgeGroup))
	if err != nil {
		return nil, err
	}

	reply, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		h.logger.ErrorContext(ctx, "text generation failed",
			"error", err,
			"age_group", dump.AgeGroup)
		if errors.Is(err, generation.ErrMalformedResponse) || errors.Is(err, generation.ErrServiceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrServiceUnavailable, err)
	}

	resp, err := h.parse(reply)
	if err != nil {
		h.logger.WarnContext(ctx, "discarding malformed generator reply",
			"error", err,
			"reply_length", len(reply))
		return nil, err
	}

	h.logger.DebugContext(ctx, "confusion dump handled",
		"age_group", dump.AgeGroup,
		"tone_fallback", !tone.Known(dump.AgeGroup),
		"action_items", len(resp.ActionItems))
	return resp, nil
}

func (h *Handler) parse(reply string) (*domain.ConfusionResponse, error) {
	var resp domain.ConfusionResponse
	if err := json.Unmarshal([]byte(stripCodeFence(reply)), &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}

	resp.CalmResponse = strings.TrimSpace(resp.CalmResponse)
	resp.PlanAdjustment = strings.TrimSpace(resp.PlanAdjustment)
	for i, item := range resp.ActionItems {
		resp.ActionItems[i] = strings.TrimSpace(item)
	}

	if err := h.validate.Struct(resp); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}
	return &resp, nil
}

// stripCodeFence removes a surrounding markdown code fence, which models
// sometimes add even when asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
