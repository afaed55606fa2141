package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/api/http/handlers"
	"github.com/spec-kit/job-tracker/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Jobs           *handlers.JobsHandler
	Resume         *handlers.ResumeHandler
	AI             *handlers.AIHandler
	AuthMiddleware *auth.AuthMiddleware
	AIRequireAuth  bool
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.AuthMiddleware.Handle, cfg.Auth.Session)

	jobs := app.Group("/jobs", cfg.AuthMiddleware.Handle)
	jobs.Get("/", cfg.Jobs.ListJobs)
	jobs.Post("/", cfg.Jobs.CreateJob)
	jobs.Delete("/", cfg.Jobs.DeleteAllJobs)
	jobs.Put("/:id", cfg.Jobs.UpdateJob)
	jobs.Delete("/:id", cfg.Jobs.DeleteJob)

	resume := app.Group("/resume", cfg.AuthMiddleware.Handle)
	resume.Get("/", cfg.Resume.GetResume)
	resume.Put("/", cfg.Resume.PutResume)

	aiGuard := cfg.AuthMiddleware.Optional
	if cfg.AIRequireAuth {
		aiGuard = cfg.AuthMiddleware.Handle
	}
	ai := app.Group("/ai", aiGuard)
	ai.Post("/tailor", cfg.AI.Tailor)
	ai.Post("/cover-letter", cfg.AI.CoverLetter)
}
