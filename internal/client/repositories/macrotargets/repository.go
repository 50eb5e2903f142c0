// Package macrotargets stores the daily calorie and macro budget and derives
// it from the onboarding profile.
package macrotargets

import (
	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireTargets struct {
	ServerID int64  `json:"id,omitempty"`
	ClientID string `json:"client_id"`
	Calories int    `json:"calories"`
	ProteinG int    `json:"protein_g"`
	FatG     int    `json:"fat_g"`
	CarbsG   int    `json:"carbs_g"`
}

func toWire(t models.MacroTargets) wireTargets {
	return wireTargets{
		ClientID: t.ID,
		Calories: t.Calories,
		ProteinG: t.ProteinG,
		FatG:     t.FatG,
		CarbsG:   t.CarbsG,
	}
}

func fromWire(w wireTargets) (models.MacroTargets, error) {
	return models.MacroTargets{
		ID:       syncable.ClientID(w.ClientID, w.ServerID),
		Calories: w.Calories,
		ProteinG: w.ProteinG,
		FatG:     w.FatG,
		CarbsG:   w.CarbsG,
	}, nil
}

// Repository holds the single targets record.
type Repository struct {
	*syncable.Document[models.MacroTargets, wireTargets]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.MacroTargets, wireTargets]{
		Key:      localstore.KeyMacroTargets,
		Path:     "/api/macro-targets",
		IDOf:     func(t models.MacroTargets) string { return t.ID },
		WithID:   func(t models.MacroTargets, id string) models.MacroTargets { t.ID = id; return t },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewDocument(cfg, deps)}
}
