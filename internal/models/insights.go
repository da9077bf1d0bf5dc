package models

import "github.com/google/uuid"

const PeriodLastSevenDays = "last_7_days"

// WeeklySummary is derived on every request from the trailing seven-day window.
// It is never persisted.
type WeeklySummary struct {
	Period      string        `json:"period"`
	UserID      uuid.UUID     `json:"user_id"`
	DietEntries []Diet        `json:"diet_entries"`
	Symptoms    []Symptom     `json:"symptoms"`
	Medications []Medication  `json:"medications"`
	Lifestyle   []Lifestyle   `json:"lifestyle"`
	Counts      SummaryCounts `json:"counts"`
}

type SummaryCounts struct {
	Diet        int `json:"diet"`
	Symptoms    int `json:"symptoms"`
	Medications int `json:"medications"`
	Lifestyle   int `json:"lifestyle"`
}

// HasAnyData reports whether at least one record of any kind falls in the window.
func (s WeeklySummary) HasAnyData() bool {
	return len(s.DietEntries) > 0 || len(s.Symptoms) > 0 || len(s.Medications) > 0 || len(s.Lifestyle) > 0
}

// Signals are the named counts computed by the rule engine. All six are always reported.
type Signals struct {
	LowSleepDays      int `json:"low_sleep_days"`
	HighStressDays    int `json:"high_stress_days"`
	NoExerciseDays    int `json:"no_exercise_days"`
	MedicationEntries int `json:"medication_entries"`
	HighCalorieMeals  int `json:"high_calorie_meals"`
	SymptomCount      int `json:"symptom_count"`
}

// Signal is one named count, used where a stable ordering is needed.
type Signal struct {
	Name  string
	Value int
}

// List returns the signals in rule-table order.
func (s Signals) List() []Signal {
	return []Signal{
		{"low_sleep_days", s.LowSleepDays},
		{"high_stress_days", s.HighStressDays},
		{"no_exercise_days", s.NoExerciseDays},
		{"medication_entries", s.MedicationEntries},
		{"high_calorie_meals", s.HighCalorieMeals},
		{"symptom_count", s.SymptomCount},
	}
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type RuleInsights struct {
	Signals      Signals   `json:"signals"`
	Observations []string  `json:"observations"`
	RiskPoints   int       `json:"risk_points"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// AIInsights is the structured narrative extracted from the model's reply.
type AIInsights struct {
	Summary     string   `json:"summary"`
	KeyPatterns []string `json:"key_patterns"`
	Suggestions []string `json:"suggestions"`
}
