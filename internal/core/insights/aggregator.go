package insights

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/markdave123-py/healthsense/internal/models"
)

// WeekWindow is the trailing window the weekly pipeline looks at.
const WeekWindow = 7 * 24 * time.Hour

// RecordLister reads one kind of health record for a user within a window.
type RecordLister[T any] interface {
	ListByUser(ctx context.Context, userID uuid.UUID, w models.Window) ([]T, error)
}

// Aggregator pulls the four record kinds of a user for the trailing week.
type Aggregator struct {
	diets       RecordLister[models.Diet]
	symptoms    RecordLister[models.Symptom]
	medications RecordLister[models.Medication]
	lifestyles  RecordLister[models.Lifestyle]
}

func NewAggregator(
	diets RecordLister[models.Diet],
	symptoms RecordLister[models.Symptom],
	medications RecordLister[models.Medication],
	lifestyles RecordLister[models.Lifestyle],
) *Aggregator {
	return &Aggregator{diets: diets, symptoms: symptoms, medications: medications, lifestyles: lifestyles}
}

// Weekly returns every record with created_at at or after now-7d. The upper end is
// left open: created_at comes from the database clock, which may run ahead of now.
// The four reads run concurrently; the first failure cancels the others.
func (a *Aggregator) Weekly(ctx context.Context, userID uuid.UUID, now time.Time) (models.WeeklySummary, error) {
	w := models.Window{From: now.Add(-WeekWindow)}
	summary := models.WeeklySummary{Period: models.PeriodLastSevenDays, UserID: userID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.DietEntries, err = a.diets.ListByUser(gctx, userID, w)
		return wrap("diets", err)
	})
	g.Go(func() error {
		var err error
		summary.Symptoms, err = a.symptoms.ListByUser(gctx, userID, w)
		return wrap("symptoms", err)
	})
	g.Go(func() error {
		var err error
		summary.Medications, err = a.medications.ListByUser(gctx, userID, w)
		return wrap("medications", err)
	})
	g.Go(func() error {
		var err error
		summary.Lifestyle, err = a.lifestyles.ListByUser(gctx, userID, w)
		return wrap("lifestyles", err)
	})
	if err := g.Wait(); err != nil {
		return models.WeeklySummary{}, err
	}

	summary.DietEntries = nonNil(summary.DietEntries)
	summary.Symptoms = nonNil(summary.Symptoms)
	summary.Medications = nonNil(summary.Medications)
	summary.Lifestyle = nonNil(summary.Lifestyle)
	summary.Counts = models.SummaryCounts{
		Diet:        len(summary.DietEntries),
		Symptoms:    len(summary.Symptoms),
		Medications: len(summary.Medications),
		Lifestyle:   len(summary.Lifestyle),
	}
	return summary, nil
}

func wrap(kind string, err error) error {
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", kind, err)
	}
	return nil
}

// nonNil keeps empty kinds serialised as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
