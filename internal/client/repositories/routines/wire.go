package routines

import (
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireExercise struct {
	Name    string `json:"name"`
	Sets    int    `json:"sets"`
	Reps    int    `json:"reps"`
	RestSec int    `json:"rest_sec"`
}

type wireRoutine struct {
	ServerID  int64          `json:"id,omitempty"`
	ClientID  string         `json:"client_id"`
	Name      string         `json:"name"`
	Exercises []wireExercise `json:"exercises"`
}

func toWire(r models.Routine) wireRoutine {
	exercises := make([]wireExercise, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		exercises = append(exercises, wireExercise(e))
	}
	return wireRoutine{ClientID: r.ID, Name: r.Name, Exercises: exercises}
}

func fromWire(w wireRoutine) (models.Routine, error) {
	exercises := make([]models.RoutineExercise, 0, len(w.Exercises))
	for _, e := range w.Exercises {
		exercises = append(exercises, models.RoutineExercise(e))
	}
	return models.Routine{
		ID:        syncable.ClientID(w.ClientID, w.ServerID),
		Name:      w.Name,
		Exercises: exercises,
	}, nil
}
