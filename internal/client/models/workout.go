package models

import "time"

// Workout is one logged training session. Exercise and set order is
// preserved as entered.
type Workout struct {
	ID          string            `json:"id"`
	RoutineID   string            `json:"routine_id,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt time.Time         `json:"completed_at,omitempty"`
	DurationSec int               `json:"duration_sec"`
	Exercises   []WorkoutExercise `json:"exercises"`
}

// WorkoutExercise groups the sets performed for one exercise.
type WorkoutExercise struct {
	Name string       `json:"name"`
	Sets []WorkoutSet `json:"sets"`
}

// WorkoutSet is a single performed set.
type WorkoutSet struct {
	WeightKg  float64 `json:"weight_kg"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}
