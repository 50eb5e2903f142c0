package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/fittrack/internal/client/repositories/macrotargets"
)

// calcTargets derives the macro budget from the stored profile and persists
// it as the current targets.
func (a *App) calcTargets(ctx context.Context) error {
	p, ok := a.Profile.Get(ctx)
	if !ok {
		fmt.Println("No profile yet, complete onboarding first.")
		return nil
	}

	targets := macrotargets.Calculate(p)
	// keep the identity of an existing record so the server updates in place
	if current, ok := a.Targets.Get(ctx); ok {
		targets.ID = current.ID
	}

	saved, out := a.Targets.Save(ctx, targets)
	if !out.Persisted {
		return out.Err
	}

	fmt.Printf("Daily targets: %d kcal, %d g protein, %d g fat, %d g carbs\n",
		saved.Calories, saved.ProteinG, saved.FatG, saved.CarbsG)
	return nil
}

func (a *App) showTargets(ctx context.Context) error {
	targets, ok := a.Targets.Get(ctx)
	if !ok {
		fmt.Println("No targets yet, run 'targets calc'.")
		return nil
	}
	fmt.Printf("%d kcal, %d g protein, %d g fat, %d g carbs\n",
		targets.Calories, targets.ProteinG, targets.FatG, targets.CarbsG)
	return nil
}
