package models

import (
	"net/mail"
	"strings"
	"time"
)

// The *Input structs list exactly the mutable fields of each record kind.
// They are used for both create and full-replacement update.

type SymptomInput struct {
	SymptomName string  `json:"symptom_name"`
	Severity    *string `json:"severity"`
	Notes       *string `json:"notes"`
}

func (i SymptomInput) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(i.SymptomName) == "" {
		errs = append(errs, FieldError{Field: "symptom_name", Message: "required"})
	}
	return validationResult(errs)
}

type MedicationInput struct {
	MedicineName string  `json:"medicine_name"`
	Dosage       *string `json:"dosage"`
	Frequency    *string `json:"frequency"`
	Notes        *string `json:"notes"`
}

func (i MedicationInput) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(i.MedicineName) == "" {
		errs = append(errs, FieldError{Field: "medicine_name", Message: "required"})
	}
	return validationResult(errs)
}

type DietInput struct {
	MealType  string  `json:"meal_type"`
	FoodItems string  `json:"food_items"`
	Calories  *int    `json:"calories"`
	Notes     *string `json:"notes"`
}

func (i DietInput) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(i.MealType) == "" {
		errs = append(errs, FieldError{Field: "meal_type", Message: "required"})
	}
	if strings.TrimSpace(i.FoodItems) == "" {
		errs = append(errs, FieldError{Field: "food_items", Message: "required"})
	}
	if i.Calories != nil && *i.Calories < 0 {
		errs = append(errs, FieldError{Field: "calories", Message: "must be non-negative"})
	}
	return validationResult(errs)
}

type LifestyleInput struct {
	SleepHours      *float64 `json:"sleep_hours"`
	SleepQuality    *int     `json:"sleep_quality"`
	ExerciseMinutes *int     `json:"exercise_minutes"`
	ExerciseType    *string  `json:"exercise_type"`
	StressLevel     *int     `json:"stress_level"`
	WaterIntake     *float64 `json:"water_intake"`
	Notes           *string  `json:"notes"`
}

func (i LifestyleInput) Validate() error {
	var errs []FieldError
	if i.SleepHours != nil && (*i.SleepHours < 0 || *i.SleepHours > 24) {
		errs = append(errs, FieldError{Field: "sleep_hours", Message: "must be between 0 and 24"})
	}
	if i.SleepQuality != nil && (*i.SleepQuality < 1 || *i.SleepQuality > 5) {
		errs = append(errs, FieldError{Field: "sleep_quality", Message: "must be between 1 and 5"})
	}
	if i.ExerciseMinutes != nil && *i.ExerciseMinutes < 0 {
		errs = append(errs, FieldError{Field: "exercise_minutes", Message: "must be non-negative"})
	}
	if i.StressLevel != nil && (*i.StressLevel < 1 || *i.StressLevel > 5) {
		errs = append(errs, FieldError{Field: "stress_level", Message: "must be between 1 and 5"})
	}
	if i.WaterIntake != nil && *i.WaterIntake < 0 {
		errs = append(errs, FieldError{Field: "water_intake", Message: "must be non-negative"})
	}
	return validationResult(errs)
}

// Credentials is the register/login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c Credentials) Validate() error {
	var errs []FieldError
	if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if c.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "required"})
	}
	if len(c.Password) > 72 {
		errs = append(errs, FieldError{Field: "password", Message: "max 72 bytes"})
	}
	return validationResult(errs)
}

// ProfileUpdate carries a partial profile update; nil fields are left untouched.
type ProfileUpdate struct {
	FullName          *string `json:"full_name"`
	Age               *int    `json:"age"`
	Gender            *string `json:"gender"`
	Height            *int    `json:"height"`
	Weight            *int    `json:"weight"`
	WakeUpTime        *string `json:"wake_up_time"`
	SleepTime         *string `json:"sleep_time"`
	MealsPerDay       *int    `json:"meals_per_day"`
	ExerciseFrequency *int    `json:"exercise_frequency"`
	WaterIntake       *int    `json:"water_intake"`
	MedicalConditions *string `json:"medical_conditions"`
	HealthGoals       *string `json:"health_goals"`
}

func (p ProfileUpdate) Validate() error {
	var errs []FieldError
	nonNegative := map[string]*int{
		"age":                p.Age,
		"height":             p.Height,
		"weight":             p.Weight,
		"meals_per_day":      p.MealsPerDay,
		"exercise_frequency": p.ExerciseFrequency,
		"water_intake":       p.WaterIntake,
	}
	for _, field := range []string{"age", "height", "weight", "meals_per_day", "exercise_frequency", "water_intake"} {
		if v := nonNegative[field]; v != nil && *v < 0 {
			errs = append(errs, FieldError{Field: field, Message: "must be non-negative"})
		}
	}
	clock := []struct {
		field string
		value *string
	}{
		{"wake_up_time", p.WakeUpTime},
		{"sleep_time", p.SleepTime},
	}
	for _, c := range clock {
		if c.value == nil || *c.value == "" {
			continue
		}
		if _, err := time.Parse("15:04", *c.value); err != nil {
			errs = append(errs, FieldError{Field: c.field, Message: "must be HH:MM"})
		}
	}
	return validationResult(errs)
}

// IsEmpty reports whether the update carries no fields at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p == ProfileUpdate{}
}
