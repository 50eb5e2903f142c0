package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/client/repositories/workouts"
)

func (a *App) listWorkouts(ctx context.Context) error {
	all := a.Workouts.All(ctx)
	if len(all) == 0 {
		fmt.Println("No workouts logged yet.")
		return nil
	}
	for _, w := range all {
		fmt.Printf("%s  %d min, %d exercises\n",
			w.StartedAt.Format("2006-01-02 15:04"), w.DurationSec/60, len(w.Exercises))
	}
	return nil
}

func (a *App) suggestProgression(ctx context.Context, exercise string) error {
	sets := a.Workouts.LastSetsForExercise(ctx, exercise)
	suggestion := workouts.SuggestProgression(sets)
	fmt.Println(suggestion.Message)
	return nil
}
