package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

func (a *App) addFood(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Food name", os.Stdout)
	if err != nil {
		return err
	}
	calories, err := GetInt(a.reader, "Calories", os.Stdout)
	if err != nil {
		return err
	}
	protein, err := GetFloat(a.reader, "Protein (g)", os.Stdout)
	if err != nil {
		return err
	}

	entry := models.FoodLogEntry{
		Date:     time.Now().Format("2006-01-02"),
		Name:     name,
		Calories: calories,
		ProteinG: protein,
	}
	_, out := a.Food.Save(ctx, entry)
	if !out.Persisted {
		return out.Err
	}

	fmt.Printf("Logged %s (%d kcal)\n", name, calories)
	return nil
}

func (a *App) foodTotals(ctx context.Context) error {
	date := time.Now().Format("2006-01-02")
	totals := a.Food.TotalsForDate(ctx, date)
	fmt.Printf("%s: %d kcal, %.0f g protein, %.0f g carbs, %.0f g fat\n",
		date, totals.Calories, totals.ProteinG, totals.CarbsG, totals.FatG)

	if targets, ok := a.Targets.Get(ctx); ok {
		fmt.Printf("Target: %d kcal, %d g protein\n", targets.Calories, targets.ProteinG)
	}
	return nil
}
