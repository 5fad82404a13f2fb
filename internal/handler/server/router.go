package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/bagdasarian/project-tracker/internal/config"
	"github.com/bagdasarian/project-tracker/internal/handler"
)

// Deps - все, что нужно роутеру помимо обработчиков
type Deps struct {
	Metrics        *handler.Metrics
	MetricsHandler http.Handler
	Limiter        handler.RateLimiter
	RateLimit      config.RateLimitConfig
	Logger         *zap.Logger
}

func NewRouter(h *handler.Handler, deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(handler.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Get("/health", h.Health)
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", h.Register)
		r.Post("/users/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)

			r.Get("/users/me", h.Me)
			r.Get("/users", h.ListUsers)
			r.Put("/users/{userId}/role", h.UpdateUserRole)

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.CreateProject)
				r.Get("/", h.ListProjects)

				r.Route("/{projectId}", func(r chi.Router) {
					r.Get("/", h.GetProject)
					r.Put("/", h.UpdateProject)
					r.Delete("/", h.DeleteProject)
					r.Post("/members", h.AssignMember)
					r.Get("/stats", h.GetWeeklyStats)

					r.Post("/tasks", h.CreateTask)
					r.Get("/tasks", h.ListTasks)
					r.Get("/tasks/{taskId}", h.GetTask)
					r.Put("/tasks/{taskId}", h.UpdateTask)
					r.Delete("/tasks/{taskId}", h.DeleteTask)
				})
			})

			r.Route("/ai", func(r chi.Router) {
				r.Use(h.RateLimit(deps.Limiter, deps.RateLimit.Limit, deps.RateLimit.Window, deps.Metrics))

				r.Post("/generate-description", h.GenerateDescription)
				r.Post("/suggest-priority", h.SuggestPriority)
				r.Post("/generate-summary", h.GenerateSummary)
				r.Post("/generate-weekly-report", h.GenerateWeeklyReport)
			})
		})
	})

	return r
}
