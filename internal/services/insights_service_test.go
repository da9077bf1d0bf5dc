package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/markdave123-py/healthsense/internal/models"
)

func sixSymptomWeek(userID uuid.UUID) models.WeeklySummary {
	syms := make([]models.Symptom, 6)
	return models.WeeklySummary{
		Period:      models.PeriodLastSevenDays,
		UserID:      userID,
		DietEntries: []models.Diet{},
		Symptoms:    syms,
		Medications: []models.Medication{{MedicineName: "vitamin d"}},
		Lifestyle:   []models.Lifestyle{},
		Counts:      models.SummaryCounts{Symptoms: 6, Medications: 1},
	}
}

func newInsights(agg weeklyAggregator, ai narrator, store *chatStoreMock) *InsightsService {
	return NewInsightsService(agg, ai, NewChatMemoryService(store), zap.NewNop())
}

func staticAggregator(summary models.WeeklySummary) *aggregatorMock {
	return &aggregatorMock{WeeklyFunc: func(context.Context, uuid.UUID, time.Time) (models.WeeklySummary, error) {
		return summary, nil
	}}
}

func TestInsights_RuleInsights(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	svc := newInsights(staticAggregator(sixSymptomWeek(userID)), &narratorMock{}, &chatStoreMock{})

	summary, rules, err := svc.RuleInsights(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, summary.UserID)
	assert.Equal(t, 2, rules.RiskPoints)
	assert.Equal(t, models.RiskLow, rules.RiskLevel)
	assert.Equal(t, []string{"You reported symptoms 6 times this week."}, rules.Observations)
}

func TestInsights_AIWeekly(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tests := []struct {
		name         string
		reply        string
		err          error
		wantFallback bool
	}{
		{name: "parsed", reply: "Sure! {\"summary\":\"s\",\"key_patterns\":[\"k\"],\"suggestions\":[]}"},
		{name: "unparseable", reply: "I'd rather not.", wantFallback: true},
		{name: "model down", err: fmt.Errorf("%w: timeout", models.ErrAIUnavailable), wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ai := &narratorMock{WeeklyNarrativeFunc: func(context.Context, models.RuleInsights) (string, error) {
				return tt.reply, tt.err
			}}
			svc := newInsights(staticAggregator(sixSymptomWeek(userID)), ai, &chatStoreMock{})

			got, err := svc.AIWeeklyInsights(context.Background(), userID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFallback, got.Fallback)
			assert.Equal(t, tt.wantFallback, got.AI == nil)
			assert.Equal(t, models.RiskLow, got.Rules.RiskLevel)
		})
	}
}

func TestInsights_AIWeeklyStoreErrorSurfaces(t *testing.T) {
	t.Parallel()

	boom := errors.New("aggregate diet: connection refused")
	agg := &aggregatorMock{WeeklyFunc: func(context.Context, uuid.UUID, time.Time) (models.WeeklySummary, error) {
		return models.WeeklySummary{}, boom
	}}
	svc := newInsights(agg, &narratorMock{}, &chatStoreMock{})

	_, err := svc.AIWeeklyInsights(context.Background(), uuid.New())
	assert.ErrorIs(t, err, boom)
}

func TestInsights_ChatPersistsBothTurns(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := &chatStoreMock{}
	ctx := context.Background()
	_, _ = store.Save(ctx, userID, models.RoleUser, "earlier question")
	_, _ = store.Save(ctx, userID, models.RoleAssistant, "earlier answer")

	var seenMemory []models.ChatMessage
	var seenContext string
	ai := &narratorMock{ChatReplyFunc: func(_ context.Context, msg, hc string, mem []models.ChatMessage) (string, error) {
		seenMemory, seenContext = mem, hc
		return "Drink more water.", nil
	}}
	svc := newInsights(staticAggregator(sixSymptomWeek(userID)), ai, store)

	reply, err := svc.Chat(ctx, userID, "  what should I do?  ")
	require.NoError(t, err)
	assert.Equal(t, "Drink more water.", reply)

	require.Len(t, seenMemory, 2)
	assert.Equal(t, "earlier question", seenMemory[0].Content)
	assert.Contains(t, seenContext, "Risk level: low")

	require.Len(t, store.turns, 4)
	assert.Equal(t, "what should I do?", store.turns[2].Content)
	assert.Equal(t, models.RoleAssistant, store.turns[3].Role)
}

func TestInsights_ChatModelFailureKeepsUserTurn(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := &chatStoreMock{}
	ai := &narratorMock{ChatReplyFunc: func(context.Context, string, string, []models.ChatMessage) (string, error) {
		return "", fmt.Errorf("%w: deadline exceeded", models.ErrAIUnavailable)
	}}
	svc := newInsights(staticAggregator(sixSymptomWeek(userID)), ai, store)

	_, err := svc.Chat(context.Background(), userID, "hi")
	assert.ErrorIs(t, err, models.ErrAIUnavailable)
	require.Len(t, store.turns, 1)
	assert.Equal(t, models.RoleUser, store.turns[0].Role)
}

func TestInsights_ChatEmptyModelReplyIsNotPersisted(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	store := &chatStoreMock{}
	ai := NewAIService(&llmMock{GenerateFunc: func(context.Context, string, string) (string, error) {
		return "", nil
	}})
	svc := newInsights(staticAggregator(sixSymptomWeek(userID)), ai, store)

	reply, err := svc.Chat(context.Background(), userID, "hello")
	assert.ErrorIs(t, err, models.ErrAIUnavailable)
	assert.Empty(t, reply)
	require.Len(t, store.turns, 1)
	assert.Equal(t, models.RoleUser, store.turns[0].Role)
	assert.Equal(t, "hello", store.turns[0].Content)
}

func TestInsights_ChatRejectsBlankMessage(t *testing.T) {
	t.Parallel()

	svc := newInsights(&aggregatorMock{}, &narratorMock{}, &chatStoreMock{})

	_, err := svc.Chat(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, models.ErrValidation)
}
