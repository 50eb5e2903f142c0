package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

func (a *App) addWeight(ctx context.Context) error {
	weight, err := GetFloat(a.reader, "Weight (kg)", os.Stdout)
	if err != nil {
		return err
	}

	entry := models.BodyWeightEntry{
		Date:     time.Now().Format("2006-01-02"),
		WeightKg: weight,
	}
	saved, out := a.Weights.Save(ctx, entry)
	if !out.Persisted {
		return out.Err
	}

	fmt.Printf("Recorded %.1f kg on %s\n", saved.WeightKg, saved.Date)
	if out.Err != nil {
		fmt.Println("(not synced yet, will reconcile later)")
	}
	return nil
}

func (a *App) listWeights(ctx context.Context) error {
	entries := a.Weights.All(ctx)
	if len(entries) == 0 {
		fmt.Println("No weight entries yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %.1f kg\n", e.Date, e.WeightKg)
	}
	if latest, ok := a.Weights.Latest(ctx); ok {
		fmt.Printf("Latest: %.1f kg\n", latest.WeightKg)
	}
	return nil
}
