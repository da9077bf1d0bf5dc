package insights

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdave123-py/healthsense/internal/models"
)

type listerStub[T any] struct {
	mu      sync.Mutex
	items   []T
	err     error
	windows []models.Window
}

func (s *listerStub[T]) ListByUser(_ context.Context, _ uuid.UUID, w models.Window) ([]T, error) {
	s.mu.Lock()
	s.windows = append(s.windows, w)
	s.mu.Unlock()
	return s.items, s.err
}

func TestAggregator_Weekly(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	diets := &listerStub[models.Diet]{items: []models.Diet{{MealType: "lunch"}, {MealType: "dinner"}}}
	symptoms := &listerStub[models.Symptom]{items: []models.Symptom{{SymptomName: "headache"}}}
	meds := &listerStub[models.Medication]{}
	lifestyles := &listerStub[models.Lifestyle]{items: []models.Lifestyle{{}, {}, {}}}

	agg := NewAggregator(diets, symptoms, meds, lifestyles)
	got, err := agg.Weekly(context.Background(), userID, now)
	require.NoError(t, err)

	assert.Equal(t, models.PeriodLastSevenDays, got.Period)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, models.SummaryCounts{Diet: 2, Symptoms: 1, Medications: 0, Lifestyle: 3}, got.Counts)
	assert.NotNil(t, got.Medications)
	assert.Empty(t, got.Medications)

	want := models.Window{From: now.Add(-7 * 24 * time.Hour)}
	for _, ws := range [][]models.Window{diets.windows, symptoms.windows, meds.windows, lifestyles.windows} {
		require.Len(t, ws, 1)
		assert.Equal(t, want, ws[0])
	}
}

func TestAggregator_WeeklyStoreError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	agg := NewAggregator(
		&listerStub[models.Diet]{},
		&listerStub[models.Symptom]{},
		&listerStub[models.Medication]{err: boom},
		&listerStub[models.Lifestyle]{},
	)

	_, err := agg.Weekly(context.Background(), uuid.New(), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "aggregate medications")
}
