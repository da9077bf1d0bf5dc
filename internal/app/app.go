package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/config"
	"github.com/markdave123-py/healthsense/internal/core"
	"github.com/markdave123-py/healthsense/internal/core/auth"
	db "github.com/markdave123-py/healthsense/internal/core/database"
	"github.com/markdave123-py/healthsense/internal/core/insights"
	"github.com/markdave123-py/healthsense/internal/core/llm"
	"github.com/markdave123-py/healthsense/internal/models"
	"github.com/markdave123-py/healthsense/internal/services"
)

type App struct {
	DBClient *db.DatabaseClient
	Server   *Server

	gemini *llm.GeminiLLM
	log    *zap.Logger
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	appCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := db.NewPool(appCtx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(appCtx, pool, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("database initialized and ready")

	a := &App{log: logger}
	a.DBClient = db.NewDatabaseClient(pool)

	var provider core.LLMProvider
	if cfg.AIAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, AI features will report unavailable")
	} else {
		gemini, err := llm.NewGeminiLLM(appCtx, cfg.AIAPIKey, cfg.GenModel)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("couldn't initialize the llm: %w", err)
		}
		a.gemini = gemini
		provider = llm.NewGuarded(gemini, cfg.AITimeout, logger)
		logger.Info("llm provider ready", zap.String("model", cfg.GenModel))
	}

	a.Server = NewServer(cfg, buildServices(a.DBClient, provider, cfg, logger), a.DBClient, logger)
	return a, nil
}

// Services is everything the HTTP layer needs.
type Services struct {
	Users       *services.UserService
	Tokens      *auth.TokenManager
	Insights    *services.InsightsService
	Symptoms    *services.RecordService[models.Symptom, models.SymptomInput]
	Medications *services.RecordService[models.Medication, models.MedicationInput]
	Diets       *services.RecordService[models.Diet, models.DietInput]
	Lifestyles  *services.RecordService[models.Lifestyle, models.LifestyleInput]
}

func buildServices(client *db.DatabaseClient, provider core.LLMProvider, cfg *config.Config, logger *zap.Logger) *Services {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL())
	agg := insights.NewAggregator(client.Diets, client.Symptoms, client.Medications, client.Lifestyles)

	return &Services{
		Users:  services.NewUserService(client.Users, client, tokens, logger),
		Tokens: tokens,
		Insights: services.NewInsightsService(
			agg,
			services.NewAIService(provider),
			services.NewChatMemoryService(client.Chat),
			logger,
		),
		Symptoms: services.NewRecordService[models.Symptom, models.SymptomInput](
			client.Symptoms, "symptom", func(s *models.Symptom) string { return s.SymptomName }, logger),
		Medications: services.NewRecordService[models.Medication, models.MedicationInput](
			client.Medications, "medication", func(m *models.Medication) string { return m.MedicineName }, logger),
		Diets: services.NewRecordService[models.Diet, models.DietInput](
			client.Diets, "diet", func(d *models.Diet) string { return d.MealType + " - " + d.FoodItems }, logger),
		Lifestyles: services.NewRecordService[models.Lifestyle, models.LifestyleInput](
			client.Lifestyles, "lifestyle", func(*models.Lifestyle) string { return "lifestyle entry" }, logger),
	}
}

func (a *App) Close() {
	if a.gemini != nil {
		if err := a.gemini.Close(); err != nil {
			a.log.Warn("closing llm client", zap.Error(err))
		}
	}
	if a.DBClient != nil {
		a.DBClient.Close()
	}
}
