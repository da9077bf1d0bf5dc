// Package insights turns a user's trailing week of records into rule-based signals.
package insights

import (
	"fmt"

	"github.com/markdave123-py/healthsense/internal/models"
)

// Thresholds and weights of the weekly rule table.
const (
	lowSleepHours      = 6.0
	highStressLevel    = 4
	highCalorieMeal    = 700
	lowSleepTrigger    = 3
	highStressTrigger  = 3
	noExerciseTrigger  = 4
	highCalorieTrigger = 4
	symptomTrigger     = 4

	lowSleepPoints     = 2
	highStressPoints   = 2
	noExercisePoints   = 1
	noMedicationPoints = 2
	highCaloriePoints  = 1
	symptomPoints      = 2

	lowTierMax    = 2
	mediumTierMax = 5
)

// Evaluate scores a weekly summary. It is pure and deterministic.
func Evaluate(summary models.WeeklySummary) models.RuleInsights {
	var (
		signals      models.Signals
		observations = []string{}
		points       int
	)

	for _, l := range summary.Lifestyle {
		if l.SleepHours != nil && *l.SleepHours < lowSleepHours {
			signals.LowSleepDays++
		}
		if l.StressLevel != nil && *l.StressLevel >= highStressLevel {
			signals.HighStressDays++
		}
		if l.ExerciseMinutes == nil || *l.ExerciseMinutes == 0 {
			signals.NoExerciseDays++
		}
	}
	for _, d := range summary.DietEntries {
		if d.Calories != nil && *d.Calories > highCalorieMeal {
			signals.HighCalorieMeals++
		}
	}
	signals.MedicationEntries = len(summary.Medications)
	signals.SymptomCount = len(summary.Symptoms)

	if signals.LowSleepDays >= lowSleepTrigger {
		observations = append(observations, fmt.Sprintf("You slept less than 6 hours on %d days.", signals.LowSleepDays))
		points += lowSleepPoints
	}
	if signals.HighStressDays >= highStressTrigger {
		observations = append(observations, fmt.Sprintf("High stress levels were recorded on %d days.", signals.HighStressDays))
		points += highStressPoints
	}
	if signals.NoExerciseDays >= noExerciseTrigger {
		observations = append(observations, "Little to no exercise on most days.")
		points += noExercisePoints
	}
	// An empty week is a new user, not a missed medication.
	if signals.MedicationEntries == 0 && summary.HasAnyData() {
		observations = append(observations, "No medication records were logged this week.")
		points += noMedicationPoints
	}
	if signals.HighCalorieMeals >= highCalorieTrigger {
		observations = append(observations, fmt.Sprintf("You logged %d high-calorie meals.", signals.HighCalorieMeals))
		points += highCaloriePoints
	}
	if signals.SymptomCount >= symptomTrigger {
		observations = append(observations, fmt.Sprintf("You reported symptoms %d times this week.", signals.SymptomCount))
		points += symptomPoints
	}

	return models.RuleInsights{
		Signals:      signals,
		Observations: observations,
		RiskPoints:   points,
		RiskLevel:    Tier(points),
	}
}

// Tier buckets risk points: <=2 low, 3-5 medium, >=6 high.
func Tier(points int) models.RiskLevel {
	switch {
	case points <= lowTierMax:
		return models.RiskLow
	case points <= mediumTierMax:
		return models.RiskMedium
	default:
		return models.RiskHigh
	}
}
