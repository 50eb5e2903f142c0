package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

func (a *App) addRun(ctx context.Context) error {
	distance, err := GetFloat(a.reader, "Distance (km)", os.Stdout)
	if err != nil {
		return err
	}
	minutes, err := GetInt(a.reader, "Duration (minutes)", os.Stdout)
	if err != nil {
		return err
	}

	entry := models.RunEntry{
		Date:        time.Now().Format("2006-01-02"),
		DistanceKm:  distance,
		DurationSec: minutes * 60,
	}
	_, out := a.Runs.Save(ctx, entry)
	if !out.Persisted {
		return out.Err
	}

	fmt.Printf("Recorded %.1f km. Lifetime total: %.1f km\n",
		distance, a.Runs.TotalDistanceKm(ctx))
	return nil
}
