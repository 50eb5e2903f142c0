// Package foodlog stores logged food entries and aggregates them per day.
package foodlog

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireEntry struct {
	ServerID int64   `json:"id,omitempty"`
	ClientID string  `json:"client_id"`
	Date     string  `json:"date"`
	Meal     string  `json:"meal,omitempty"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func toWire(e models.FoodLogEntry) wireEntry {
	return wireEntry{
		ClientID: e.ID,
		Date:     e.Date,
		Meal:     e.Meal,
		Name:     e.Name,
		Calories: e.Calories,
		ProteinG: e.ProteinG,
		CarbsG:   e.CarbsG,
		FatG:     e.FatG,
	}
}

func fromWire(w wireEntry) (models.FoodLogEntry, error) {
	return models.FoodLogEntry{
		ID:       syncable.ClientID(w.ClientID, w.ServerID),
		Date:     w.Date,
		Meal:     w.Meal,
		Name:     w.Name,
		Calories: w.Calories,
		ProteinG: w.ProteinG,
		CarbsG:   w.CarbsG,
		FatG:     w.FatG,
	}, nil
}

type Repository struct {
	*syncable.Collection[models.FoodLogEntry, wireEntry]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.FoodLogEntry, wireEntry]{
		Key:      localstore.KeyFoodLog,
		Path:     "/api/food-logs",
		IDOf:     func(e models.FoodLogEntry) string { return e.ID },
		WithID:   func(e models.FoodLogEntry, id string) models.FoodLogEntry { e.ID = id; return e },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}

// DayTotals is the macro sum over one day's entries.
type DayTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// TotalsForDate sums every entry whose Date equals the argument. A day with
// no entries yields the zero accumulator.
func (r *Repository) TotalsForDate(ctx context.Context, date string) DayTotals {
	var totals DayTotals
	for _, e := range r.All(ctx) {
		if e.Date != date {
			continue
		}
		totals.Calories += e.Calories
		totals.ProteinG += e.ProteinG
		totals.CarbsG += e.CarbsG
		totals.FatG += e.FatG
	}
	return totals
}
