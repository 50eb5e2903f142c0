package models

// Routine is a reusable workout template.
type Routine struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Exercises []RoutineExercise `json:"exercises"`
}

// RoutineExercise is one planned exercise within a routine.
type RoutineExercise struct {
	Name    string `json:"name"`
	Sets    int    `json:"sets"`
	Reps    int    `json:"reps"`
	RestSec int    `json:"rest_sec"`
}
