package workouts

import (
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireSet struct {
	WeightKg  float64 `json:"weight_kg"`
	Reps      int     `json:"reps"`
	Completed bool    `json:"completed"`
}

type wireExercise struct {
	Name string    `json:"name"`
	Sets []wireSet `json:"sets"`
}

type wireWorkout struct {
	ServerID    int64          `json:"id,omitempty"`
	ClientID    string         `json:"client_id"`
	RoutineID   string         `json:"routine_id,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at,omitempty"`
	DurationSec int            `json:"duration_sec"`
	Exercises   []wireExercise `json:"exercises"`
}

func toWire(w models.Workout) wireWorkout {
	exercises := make([]wireExercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		sets := make([]wireSet, 0, len(e.Sets))
		for _, s := range e.Sets {
			sets = append(sets, wireSet(s))
		}
		exercises = append(exercises, wireExercise{Name: e.Name, Sets: sets})
	}
	return wireWorkout{
		ClientID:    w.ID,
		RoutineID:   w.RoutineID,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
		DurationSec: w.DurationSec,
		Exercises:   exercises,
	}
}

func fromWire(w wireWorkout) (models.Workout, error) {
	exercises := make([]models.WorkoutExercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		sets := make([]models.WorkoutSet, 0, len(e.Sets))
		for _, s := range e.Sets {
			sets = append(sets, models.WorkoutSet(s))
		}
		exercises = append(exercises, models.WorkoutExercise{Name: e.Name, Sets: sets})
	}
	return models.Workout{
		ID:          syncable.ClientID(w.ClientID, w.ServerID),
		RoutineID:   w.RoutineID,
		StartedAt:   w.StartedAt,
		CompletedAt: w.CompletedAt,
		DurationSec: w.DurationSec,
		Exercises:   exercises,
	}, nil
}
