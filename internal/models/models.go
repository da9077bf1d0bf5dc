package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated user of the system together with their profile.
type User struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Email             string    `db:"email" json:"email"`
	PasswordHash      string    `db:"password_hash" json:"-"`
	FullName          *string   `db:"full_name" json:"full_name"`
	Age               *int      `db:"age" json:"age"`
	Gender            *string   `db:"gender" json:"gender"`
	Height            *int      `db:"height" json:"height"` // cm
	Weight            *int      `db:"weight" json:"weight"` // kg
	WakeUpTime        *string   `db:"wake_up_time" json:"wake_up_time"`
	SleepTime         *string   `db:"sleep_time" json:"sleep_time"`
	MealsPerDay       *int      `db:"meals_per_day" json:"meals_per_day"`
	ExerciseFrequency *int      `db:"exercise_frequency" json:"exercise_frequency"` // times per week
	WaterIntake       *int      `db:"water_intake" json:"water_intake"`             // glasses per day
	MedicalConditions *string   `db:"medical_conditions" json:"medical_conditions"`
	HealthGoals       *string   `db:"health_goals" json:"health_goals"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Symptom is a single reported symptom.
type Symptom struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"-"`
	SymptomName string    `db:"symptom_name" json:"symptom_name"`
	Severity    *string   `db:"severity" json:"severity"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Medication is a logged medication intake.
type Medication struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"-"`
	MedicineName string    `db:"medicine_name" json:"medicine_name"`
	Dosage       *string   `db:"dosage" json:"dosage"`
	Frequency    *string   `db:"frequency" json:"frequency"`
	Notes        *string   `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Diet is a logged meal.
type Diet struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"-"`
	MealType  string    `db:"meal_type" json:"meal_type"`
	FoodItems string    `db:"food_items" json:"food_items"`
	Calories  *int      `db:"calories" json:"calories"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Lifestyle is a daily lifestyle log.
type Lifestyle struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"-"`
	SleepHours      *float64  `db:"sleep_hours" json:"sleep_hours"`
	SleepQuality    *int      `db:"sleep_quality" json:"sleep_quality"` // 1-5
	ExerciseMinutes *int      `db:"exercise_minutes" json:"exercise_minutes"`
	ExerciseType    *string   `db:"exercise_type" json:"exercise_type"`
	StressLevel     *int      `db:"stress_level" json:"stress_level"` // 1-5
	WaterIntake     *float64  `db:"water_intake" json:"water_intake"` // litres
	Notes           *string   `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ChatMessage represents an individual chat turn (user or assistant).
type ChatMessage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"-"`
	Role      string    `db:"role" json:"role"` // "user" or "assistant"
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Window is a closed time range [From, To]. A zero bound leaves that side open;
// a zero Window means "all time".
type Window struct {
	From time.Time
	To   time.Time
}
