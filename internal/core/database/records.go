package db

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

// RecordStore persists one health-record kind. T is the row type, In the set of
// mutable fields accepted on create and full-replacement update.
type RecordStore[T any, In any] struct {
	pool    Pool
	table   string
	entity  string
	columns []string
	values  func(In) map[string]any
}

func NewSymptomStore(pool Pool) *RecordStore[models.Symptom, models.SymptomInput] {
	return &RecordStore[models.Symptom, models.SymptomInput]{
		pool:    pool,
		table:   "symptoms",
		entity:  "symptom",
		columns: []string{"id", "user_id", "symptom_name", "severity", "notes", "created_at"},
		values: func(in models.SymptomInput) map[string]any {
			return map[string]any{
				"symptom_name": in.SymptomName,
				"severity":     in.Severity,
				"notes":        in.Notes,
			}
		},
	}
}

func NewMedicationStore(pool Pool) *RecordStore[models.Medication, models.MedicationInput] {
	return &RecordStore[models.Medication, models.MedicationInput]{
		pool:    pool,
		table:   "medications",
		entity:  "medication",
		columns: []string{"id", "user_id", "medicine_name", "dosage", "frequency", "notes", "created_at"},
		values: func(in models.MedicationInput) map[string]any {
			return map[string]any{
				"medicine_name": in.MedicineName,
				"dosage":        in.Dosage,
				"frequency":     in.Frequency,
				"notes":         in.Notes,
			}
		},
	}
}

func NewDietStore(pool Pool) *RecordStore[models.Diet, models.DietInput] {
	return &RecordStore[models.Diet, models.DietInput]{
		pool:    pool,
		table:   "diets",
		entity:  "diet",
		columns: []string{"id", "user_id", "meal_type", "food_items", "calories", "notes", "created_at"},
		values: func(in models.DietInput) map[string]any {
			return map[string]any{
				"meal_type":  in.MealType,
				"food_items": in.FoodItems,
				"calories":   in.Calories,
				"notes":      in.Notes,
			}
		},
	}
}

func NewLifestyleStore(pool Pool) *RecordStore[models.Lifestyle, models.LifestyleInput] {
	return &RecordStore[models.Lifestyle, models.LifestyleInput]{
		pool:   pool,
		table:  "lifestyles",
		entity: "lifestyle",
		columns: []string{
			"id", "user_id", "sleep_hours", "sleep_quality", "exercise_minutes",
			"exercise_type", "stress_level", "water_intake", "notes", "created_at",
		},
		values: func(in models.LifestyleInput) map[string]any {
			return map[string]any{
				"sleep_hours":      in.SleepHours,
				"sleep_quality":    in.SleepQuality,
				"exercise_minutes": in.ExerciseMinutes,
				"exercise_type":    in.ExerciseType,
				"stress_level":     in.StressLevel,
				"water_intake":     in.WaterIntake,
				"notes":            in.Notes,
			}
		},
	}
}

func (s *RecordStore[T, In]) Create(ctx context.Context, userID uuid.UUID, in In) (*T, error) {
	set := s.values(in)
	id := uuid.New()
	set["id"] = id
	set["user_id"] = userID

	query, args, err := psql.Insert(s.table).
		SetMap(set).
		Suffix("RETURNING " + joinColumns(s.columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", s.entity, err)
	}

	var out T
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &out, query, args...); err != nil {
		return nil, mapError(err, s.entity, id)
	}
	return &out, nil
}

// ListByUser returns the user's records newest first. Set bounds are inclusive;
// a zero bound is left open.
func (s *RecordStore[T, In]) ListByUser(ctx context.Context, userID uuid.UUID, w models.Window) ([]T, error) {
	b := psql.Select(s.columns...).
		From(s.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")
	if !w.From.IsZero() {
		b = b.Where(sq.GtOrEq{"created_at": w.From})
	}
	if !w.To.IsZero() {
		b = b.Where(sq.LtOrEq{"created_at": w.To})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", s.entity, err)
	}

	var out []T
	if err := pgxscan.Select(ctx, QuerierFromCtx(ctx, s.pool), &out, query, args...); err != nil {
		return nil, mapError(err, s.entity, userID)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Update replaces every mutable field. A record owned by someone else is
// indistinguishable from a missing one.
func (s *RecordStore[T, In]) Update(ctx context.Context, userID, id uuid.UUID, in In) (*T, error) {
	query, args, err := psql.Update(s.table).
		SetMap(s.values(in)).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(s.columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", s.entity, err)
	}

	var out T
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &out, query, args...); err != nil {
		return nil, mapError(err, s.entity, id)
	}
	return &out, nil
}

// Delete removes the record and returns what was deleted.
func (s *RecordStore[T, In]) Delete(ctx context.Context, userID, id uuid.UUID) (*T, error) {
	query, args, err := psql.Delete(s.table).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(s.columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build delete %s: %w", s.entity, err)
	}

	var out T
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &out, query, args...); err != nil {
		return nil, mapError(err, s.entity, id)
	}
	return &out, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
