package workouts

import (
	"fmt"
	"math"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// Suggestion is the next-session load recommendation for one exercise.
type Suggestion struct {
	WeightKg float64
	Message  string
}

// Weight jumps: heavier lifts move in larger steps.
const (
	heavyThresholdKg = 50
	heavyStepKg      = 5
	lightStepKg      = 2.5
	deloadFactor     = 0.95
	plateStepKg      = 2.5
)

// SuggestProgression derives the next load from the last performed sets.
// All sets completed means move up; two or more failed sets means deload by
// five percent rounded to the nearest plate step; anything in between means
// repeat the weight.
func SuggestProgression(sets []models.WorkoutSet) Suggestion {
	if len(sets) == 0 {
		return Suggestion{WeightKg: 0, Message: "no history for this exercise, start with a comfortable weight"}
	}

	last := sets[len(sets)-1].WeightKg
	failed := 0
	for _, s := range sets {
		if !s.Completed {
			failed++
		}
	}

	switch {
	case failed == 0:
		step := float64(lightStepKg)
		if last >= heavyThresholdKg {
			step = heavyStepKg
		}
		next := last + step
		return Suggestion{
			WeightKg: next,
			Message:  fmt.Sprintf("all sets completed, increase to %.1f kg", next),
		}
	case failed >= 2:
		next := roundToStep(last*deloadFactor, plateStepKg)
		return Suggestion{
			WeightKg: next,
			Message:  fmt.Sprintf("%d sets failed, deload to %.1f kg", failed, next),
		}
	default:
		return Suggestion{
			WeightKg: last,
			Message:  fmt.Sprintf("stay at %.1f kg and aim for all sets", last),
		}
	}
}

func roundToStep(v, step float64) float64 {
	return math.Round(v/step) * step
}
