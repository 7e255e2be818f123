package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/planwise/planwise-api/internal/config"
	"github.com/planwise/planwise-api/internal/platform/gemini"
	"github.com/planwise/planwise-api/internal/platform/postgres"
	"github.com/planwise/planwise-api/internal/service"
	"github.com/planwise/planwise-api/internal/service/auth"
	"github.com/planwise/planwise-api/internal/service/confusion"
)

// application holds the shared dependencies of the server so they can be
// wired once and cleaned up together.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService       auth.JWTService
	planService      service.PlanService
	brainDumpService service.BrainDumpService
	profileService   service.ProfileService
	studyService     service.StudyService
}

// newApplication creates the stores, the Gemini generator and the services
// on top of an open database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	profileStore := postgres.NewPostgresProfileStore(db, logger)
	subjectStore := postgres.NewPostgresSubjectStore(db, logger)
	assignmentStore := postgres.NewPostgresAssignmentStore(db, logger)
	brainDumpStore := postgres.NewPostgresBrainDumpStore(db, logger)
	checkinStore := postgres.NewPostgresCheckinStore(db, logger)

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
		gemini.WithResponseSchema(gemini.ConfusionResponseSchema),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized", "model", cfg.LLM.ModelName)

	confusionHandler, err := confusion.NewHandler(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create confusion handler: %w", err)
	}

	app.planService, err = service.NewPlanService(profileStore, subjectStore, assignmentStore, checkinStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan service: %w", err)
	}
	app.brainDumpService, err = service.NewBrainDumpService(confusionHandler, brainDumpStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create brain dump service: %w", err)
	}
	app.profileService, err = service.NewProfileService(db, profileStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}
	app.studyService, err = service.NewStudyService(subjectStore, assignmentStore, checkinStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create study service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
