package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/config"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/session"
)

func NewRouter(cfg *config.Config, database *db.DB, manager *session.Manager, resp *responder.Responder) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)

	handlers := NewHandlers(cfg, database, manager, resp)

	// Public endpoints
	r.Get("/health", handlers.Health)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimitMiddleware(NewRateLimiter(60, time.Minute)))
		r.Use(SessionMiddleware(manager))
		r.Use(JSONContentType)

		r.Post("/message", handlers.Message)

		r.Get("/trends", handlers.Trends)
		r.Get("/insights", handlers.Insights)
		r.Get("/history/export", handlers.ExportHistory)
		r.Delete("/history", handlers.ClearHistory)

		r.Get("/tip", handlers.DailyTip)
		r.Get("/resources/{emotion}", handlers.Resources)

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", handlers.Exercises)
			r.Get("/recommend", handlers.RecommendExercise)
			r.Post("/complete", handlers.CompleteExercise)
			r.Get("/challenge", handlers.DailyChallenge)
		})

		r.Get("/memory", handlers.Memory)
		r.Delete("/memory", handlers.ClearMemory)
	})

	return r
}
