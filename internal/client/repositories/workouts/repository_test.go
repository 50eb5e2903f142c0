package workouts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type offlineSession struct{}

func (offlineSession) IsAuthenticated(context.Context) bool { return false }

func testDeps(t *testing.T) syncable.Deps {
	t.Helper()
	return syncable.Deps{
		Store:   localstore.NewMemoryStore(),
		Session: offlineSession{},
		Log:     logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func benchWorkout(startedAt time.Time, weight float64) models.Workout {
	return models.Workout{
		StartedAt: startedAt,
		Exercises: []models.WorkoutExercise{
			{Name: "Bench Press", Sets: []models.WorkoutSet{
				{WeightKg: weight, Reps: 5, Completed: true},
			}},
		},
	}
}

func TestLastSetsForExercise(t *testing.T) {
	ctx := context.Background()
	repo := New(testDeps(t))

	monday := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	_, out := repo.Save(ctx, benchWorkout(monday, 95))
	require.True(t, out.Persisted)
	_, out = repo.Save(ctx, benchWorkout(monday.AddDate(0, 0, 2), 100))
	require.True(t, out.Persisted)

	sets := repo.LastSetsForExercise(ctx, "bench press")
	require.Len(t, sets, 1)
	require.Equal(t, 100.0, sets[0].WeightKg, "most recent workout wins regardless of save order")

	require.Nil(t, repo.LastSetsForExercise(ctx, "Deadlift"))
}

func TestWorkoutWireMapping(t *testing.T) {
	started := time.Date(2026, 8, 26, 7, 30, 0, 0, time.UTC)
	w := models.Workout{
		ID:          "c-w1",
		RoutineID:   "c-r1",
		StartedAt:   started,
		CompletedAt: started.Add(time.Hour),
		DurationSec: 3600,
		Exercises: []models.WorkoutExercise{
			{Name: "Squat", Sets: []models.WorkoutSet{
				{WeightKg: 120, Reps: 5, Completed: true},
				{WeightKg: 120, Reps: 4, Completed: false},
			}},
		},
	}

	wire := toWire(w)
	require.Equal(t, "c-w1", wire.ClientID)

	wire.ServerID = 9
	back, err := fromWire(wire)
	require.NoError(t, err)
	require.Equal(t, w, back)
}
