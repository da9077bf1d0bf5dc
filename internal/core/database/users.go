package db

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/markdave123-py/healthsense/internal/models"
)

var userColumns = []string{
	"id", "email", "password_hash",
	"full_name", "age", "gender", "height", "weight",
	"wake_up_time", "sleep_time", "meals_per_day", "exercise_frequency", "water_intake",
	"medical_conditions", "health_goals",
	"created_at", "updated_at",
}

type UserStore struct {
	pool Pool
}

func NewUserStore(pool Pool) *UserStore {
	return &UserStore{pool: pool}
}

// Create inserts a user with an empty profile. A taken email maps to ErrAlreadyExists.
func (s *UserStore) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query, args, err := psql.Insert("users").
		Columns("id", "email", "password_hash").
		Values(uuid.New(), email, passwordHash).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var u models.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &u, query, args...); err != nil {
		return nil, mapError(err, "user", email)
	}
	return &u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getOne(ctx, sq.Eq{"email": email}, email)
}

func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getOne(ctx, sq.Eq{"id": id}, id)
}

func (s *UserStore) getOne(ctx context.Context, where sq.Eq, key any) (*models.User, error) {
	query, args, err := psql.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u models.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &u, query, args...); err != nil {
		return nil, mapError(err, "user", key)
	}
	return &u, nil
}

// UpdateProfile writes only the fields set in upd and bumps updated_at.
// An empty update just returns the current row.
func (s *UserStore) UpdateProfile(ctx context.Context, id uuid.UUID, upd models.ProfileUpdate) (*models.User, error) {
	set := profileSetMap(upd)
	if len(set) == 0 {
		return s.GetByID(ctx, id)
	}
	set["updated_at"] = sq.Expr("now()")

	query, args, err := psql.Update("users").
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(userColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var u models.User
	if err := pgxscan.Get(ctx, QuerierFromCtx(ctx, s.pool), &u, query, args...); err != nil {
		return nil, mapError(err, "user", id)
	}
	return &u, nil
}

func profileSetMap(upd models.ProfileUpdate) map[string]any {
	set := map[string]any{}
	putString := func(col string, v *string) {
		if v != nil {
			set[col] = *v
		}
	}
	putInt := func(col string, v *int) {
		if v != nil {
			set[col] = *v
		}
	}

	putString("full_name", upd.FullName)
	putInt("age", upd.Age)
	putString("gender", upd.Gender)
	putInt("height", upd.Height)
	putInt("weight", upd.Weight)
	putString("wake_up_time", upd.WakeUpTime)
	putString("sleep_time", upd.SleepTime)
	putInt("meals_per_day", upd.MealsPerDay)
	putInt("exercise_frequency", upd.ExerciseFrequency)
	putInt("water_intake", upd.WaterIntake)
	putString("medical_conditions", upd.MedicalConditions)
	putString("health_goals", upd.HealthGoals)
	return set
}
