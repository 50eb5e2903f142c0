// Package workouts stores logged training sessions and derives progression
// suggestions from them.
package workouts

import (
	"context"
	"sort"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type Repository struct {
	*syncable.Collection[models.Workout, wireWorkout]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.Workout, wireWorkout]{
		Key:      localstore.KeyWorkouts,
		Path:     "/api/workouts",
		IDOf:     func(w models.Workout) string { return w.ID },
		WithID:   func(w models.Workout, id string) models.Workout { w.ID = id; return w },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}

// LastSetsForExercise returns the sets performed for the named exercise in
// the most recent workout that includes it. Nil when the exercise was never
// performed.
func (r *Repository) LastSetsForExercise(ctx context.Context, name string) []models.WorkoutSet {
	all := r.All(ctx)
	sort.Slice(all, func(i, j int) bool {
		return all[i].StartedAt.After(all[j].StartedAt)
	})

	for _, workout := range all {
		for _, exercise := range workout.Exercises {
			if strings.EqualFold(exercise.Name, name) {
				return exercise.Sets
			}
		}
	}
	return nil
}
