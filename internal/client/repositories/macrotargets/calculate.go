package macrotargets

import (
	"math"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// Caloric offsets per goal and energy densities per macro gram.
const (
	fatLossDeficitKcal    = 500
	muscleGainSurplusKcal = 300
	proteinPerKg          = 2.0
	fatCalorieShare       = 0.25
	kcalPerGramProtein    = 4
	kcalPerGramFat        = 9
	kcalPerGramCarb       = 4
)

// Calculate derives the daily budget from the profile using the
// Mifflin-St Jeor equation: BMR scaled by an activity factor, shifted by the
// goal offset, then split into protein at 2 g/kg, fat at a quarter of the
// calories, and carbs from the remainder. Every result is rounded to the
// nearest integer.
func Calculate(p models.Profile) models.MacroTargets {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Sex == models.SexFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	factor := 1.55
	if p.Activity == models.ActivityHigh {
		factor = 1.725
	}
	tdee := bmr * factor

	switch p.Goal {
	case models.GoalFatLoss:
		tdee -= fatLossDeficitKcal
	case models.GoalMuscleGain:
		tdee += muscleGainSurplusKcal
	}

	calories := int(math.Round(tdee))
	protein := int(math.Round(proteinPerKg * p.WeightKg))
	fat := int(math.Round(float64(calories) * fatCalorieShare / kcalPerGramFat))
	carbs := int(math.Round(float64(calories-protein*kcalPerGramProtein-fat*kcalPerGramFat) / kcalPerGramCarb))

	return models.MacroTargets{
		Calories: calories,
		ProteinG: protein,
		FatG:     fat,
		CarbsG:   carbs,
	}
}
