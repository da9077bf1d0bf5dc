package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/models"
	"github.com/markdave123-py/healthsense/internal/services"
)

const (
	confidenceRules   = "rule-based"
	confidenceRulesAI = "rule-based + ai-assisted"
)

type insightsService interface {
	WeeklySummary(ctx context.Context, userID uuid.UUID) (models.WeeklySummary, error)
	RuleInsights(ctx context.Context, userID uuid.UUID) (models.WeeklySummary, models.RuleInsights, error)
	AIWeeklyInsights(ctx context.Context, userID uuid.UUID) (services.AIWeekly, error)
}

type InsightsHandler struct {
	svc insightsService
	log *zap.Logger
}

func NewInsightsHandler(svc insightsService, logger *zap.Logger) *InsightsHandler {
	return &InsightsHandler{svc: svc, log: logger}
}

type ruleInsightsResponse struct {
	Period       string           `json:"period"`
	UserID       uuid.UUID        `json:"user_id"`
	Signals      models.Signals   `json:"signals"`
	Observations []string         `json:"observations"`
	RiskLevel    models.RiskLevel `json:"risk_level"`
	RiskPoints   int              `json:"risk_points"`
	Confidence   string           `json:"confidence"`
}

type aiWeeklyResponse struct {
	ruleInsightsResponse
	AIInsights *models.AIInsights `json:"ai_insights"`
	AIFallback bool               `json:"ai_fallback"`
}

func (h *InsightsHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.svc.WeeklySummary(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *InsightsHandler) WeeklyInsights(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, rules, err := h.svc.RuleInsights(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, newRuleInsightsResponse(summary, rules, confidenceRules))
}

// AIWeekly always answers 200 once the records are read; a missing narrative
// is reported through ai_fallback.
func (h *InsightsHandler) AIWeekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.AIWeeklyInsights(r.Context(), userID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, aiWeeklyResponse{
		ruleInsightsResponse: newRuleInsightsResponse(res.Summary, res.Rules, confidenceRulesAI),
		AIInsights:           res.AI,
		AIFallback:           res.Fallback,
	})
}

func newRuleInsightsResponse(summary models.WeeklySummary, rules models.RuleInsights, confidence string) ruleInsightsResponse {
	return ruleInsightsResponse{
		Period:       summary.Period,
		UserID:       summary.UserID,
		Signals:      rules.Signals,
		Observations: rules.Observations,
		RiskLevel:    rules.RiskLevel,
		RiskPoints:   rules.RiskPoints,
		Confidence:   confidence,
	}
}
