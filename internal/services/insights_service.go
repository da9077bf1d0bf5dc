package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/core/aiparse"
	"github.com/markdave123-py/healthsense/internal/core/insights"
	"github.com/markdave123-py/healthsense/internal/models"
)

type weeklyAggregator interface {
	Weekly(ctx context.Context, userID uuid.UUID, now time.Time) (models.WeeklySummary, error)
}

type narrator interface {
	WeeklyNarrative(ctx context.Context, rules models.RuleInsights) (string, error)
	ChatReply(ctx context.Context, message, healthContext string, memory []models.ChatMessage) (string, error)
}

// AIWeekly is the rule output plus the optional narrative. AI is nil and
// Fallback true whenever the model failed or its reply could not be parsed.
type AIWeekly struct {
	Summary  models.WeeklySummary
	Rules    models.RuleInsights
	AI       *models.AIInsights
	Fallback bool
}

// InsightsService runs the weekly pipeline: aggregate, score, then optionally narrate.
type InsightsService struct {
	agg    weeklyAggregator
	ai     narrator
	memory *ChatMemoryService
	log    *zap.Logger
	now    func() time.Time
}

func NewInsightsService(agg weeklyAggregator, ai narrator, memory *ChatMemoryService, logger *zap.Logger) *InsightsService {
	return &InsightsService{
		agg:    agg,
		ai:     ai,
		memory: memory,
		log:    logger.With(zap.String("service", "insights")),
		now:    time.Now,
	}
}

func (s *InsightsService) WeeklySummary(ctx context.Context, userID uuid.UUID) (models.WeeklySummary, error) {
	return s.agg.Weekly(ctx, userID, s.now())
}

func (s *InsightsService) RuleInsights(ctx context.Context, userID uuid.UUID) (models.WeeklySummary, models.RuleInsights, error) {
	summary, err := s.WeeklySummary(ctx, userID)
	if err != nil {
		return models.WeeklySummary{}, models.RuleInsights{}, err
	}
	return summary, insights.Evaluate(summary), nil
}

// AIWeeklyInsights never fails because of the model; only store errors surface.
func (s *InsightsService) AIWeeklyInsights(ctx context.Context, userID uuid.UUID) (AIWeekly, error) {
	summary, rules, err := s.RuleInsights(ctx, userID)
	if err != nil {
		return AIWeekly{}, err
	}

	out := AIWeekly{Summary: summary, Rules: rules, Fallback: true}

	raw, err := s.ai.WeeklyNarrative(ctx, rules)
	if err != nil {
		s.log.Warn("weekly narrative unavailable, using rule-based output", zap.Error(err))
		return out, nil
	}
	if parsed := aiparse.ParseWeeklyInsights(raw); parsed != nil {
		out.AI = parsed
		out.Fallback = false
	} else {
		s.log.Warn("weekly narrative could not be parsed", zap.Int("reply_len", len(raw)))
	}
	return out, nil
}

// Chat answers with the last turns and this week's rule output as context. The
// user turn is stored before the model is called, so it survives a model failure.
func (s *InsightsService) Chat(ctx context.Context, userID uuid.UUID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", models.NewValidationError("message", "required")
	}

	history, err := s.memory.Recent(ctx, userID)
	if err != nil {
		return "", err
	}
	_, rules, err := s.RuleInsights(ctx, userID)
	if err != nil {
		return "", err
	}

	if err := s.memory.Save(ctx, userID, models.RoleUser, message); err != nil {
		return "", err
	}

	reply, err := s.ai.ChatReply(ctx, message, HealthContext(rules), history)
	if err != nil {
		s.log.Error("chat reply failed", zap.Stringer("user_id", userID), zap.Error(err))
		return "", fmt.Errorf("chat: %w", err)
	}

	if err := s.memory.Save(ctx, userID, models.RoleAssistant, reply); err != nil {
		return "", err
	}
	return reply, nil
}
