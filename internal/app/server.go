package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/api/handlers"
	appMiddleware "github.com/markdave123-py/healthsense/internal/api/middlewares"
	"github.com/markdave123-py/healthsense/internal/config"
	"github.com/markdave123-py/healthsense/internal/models"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
	log        *zap.Logger
}

type pinger interface {
	Ping(ctx context.Context) error
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, svc *Services, db pinger, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, svc, db, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: logger,
	}
}

// NewRouter is split out so tests can drive the full route table.
func NewRouter(cfg *config.Config, svc *Services, db pinger, logger *zap.Logger) http.Handler {
	authHandler := handlers.NewAuthHandler(svc.Users, logger)
	insightsHandler := handlers.NewInsightsHandler(svc.Insights, logger)
	chatHandler := handlers.NewChatHandler(svc.Insights, logger)
	healthHandler := handlers.NewHealthHandler(db, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(appMiddleware.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// public endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// protected endpoints
	r.Group(func(protected chi.Router) {
		protected.Use(appMiddleware.JWTMiddleware(svc.Tokens))

		protected.Get("/auth/profile", authHandler.GetProfile)
		protected.Put("/auth/profile", authHandler.UpdateProfile)
		protected.Delete("/auth/profile", authHandler.DeleteProfile)

		protected.Route("/symptoms",
			handlers.NewRecordHandler[models.Symptom, models.SymptomInput](svc.Symptoms, handlers.SymptomKind, logger).Routes)
		protected.Route("/medications",
			handlers.NewRecordHandler[models.Medication, models.MedicationInput](svc.Medications, handlers.MedicationKind, logger).Routes)
		protected.Route("/diets",
			handlers.NewRecordHandler[models.Diet, models.DietInput](svc.Diets, handlers.DietKind, logger).Routes)
		protected.Route("/lifestyles",
			handlers.NewRecordHandler[models.Lifestyle, models.LifestyleInput](svc.Lifestyles, handlers.LifestyleKind, logger).Routes)

		protected.Get("/health/weekly-summary", insightsHandler.WeeklySummary)
		protected.Get("/insights/weekly", insightsHandler.WeeklyInsights)
		protected.Get("/ai/weekly-summary", insightsHandler.AIWeekly)
		protected.Post("/ai/chat", chatHandler.Ask)
	})

	return r
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	s.log.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
