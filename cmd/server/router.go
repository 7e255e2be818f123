package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/planwise/planwise-api/internal/api"
	apiMiddleware "github.com/planwise/planwise-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter builds the HTTP handler: public status endpoints plus the
// authenticated /api routes, wrapped in CORS.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	status := api.NewStatusHandler()
	plans := api.NewPlanHandler(app.planService, app.logger)
	brainDumps := api.NewBrainDumpHandler(app.brainDumpService, app.logger)
	profile := api.NewProfileHandler(app.profileService, app.logger)
	study := api.NewStudyHandler(app.studyService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/", status.Root)
	r.Get("/health", status.Health)
	r.Get("/test", status.Test)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/plans", plans.GeneratePlan)
		r.Post("/plans/today", plans.GenerateTodayPlan)

		r.Post("/confusion-dumps", brainDumps.CreateConfusionDump)
		r.Get("/brain-dumps", brainDumps.ListBrainDumps)

		r.Get("/profile", profile.GetProfile)
		r.Put("/profile", profile.UpdateProfile)

		r.Get("/subjects", study.ListSubjects)
		r.Put("/subjects/{id}", study.PutSubject)
		r.Get("/assignments", study.ListAssignments)
		r.Put("/assignments/{id}", study.PutAssignment)
		r.Post("/checkins", study.CreateCheckin)
	})

	return app.corsHandler().Handler(r)
}

// corsHandler allows the configured origins. A "*" entry allows any origin;
// credentials are only allowed for explicit origin lists.
func (app *application) corsHandler() *cors.Cors {
	origins := app.config.CORS.AllowedOrigins
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"X-Trace-ID"},
		AllowCredentials: !wildcard,
	})
}
