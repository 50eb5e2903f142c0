// Package savedfoods stores the user's reusable food definitions.
package savedfoods

import (
	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireFood struct {
	ServerID int64   `json:"id,omitempty"`
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	ServingG float64 `json:"serving_g,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
}

func toWire(f models.SavedFood) wireFood {
	return wireFood{
		ClientID: f.ID,
		Name:     f.Name,
		Brand:    f.Brand,
		Calories: f.Calories,
		ProteinG: f.ProteinG,
		CarbsG:   f.CarbsG,
		FatG:     f.FatG,
		ServingG: f.ServingG,
		Barcode:  f.Barcode,
	}
}

func fromWire(w wireFood) (models.SavedFood, error) {
	return models.SavedFood{
		ID:       syncable.ClientID(w.ClientID, w.ServerID),
		Name:     w.Name,
		Brand:    w.Brand,
		Calories: w.Calories,
		ProteinG: w.ProteinG,
		CarbsG:   w.CarbsG,
		FatG:     w.FatG,
		ServingG: w.ServingG,
		Barcode:  w.Barcode,
	}, nil
}

type Repository struct {
	*syncable.Collection[models.SavedFood, wireFood]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.SavedFood, wireFood]{
		Key:      localstore.KeySavedFoods,
		Path:     "/api/saved-foods",
		IDOf:     func(f models.SavedFood) string { return f.ID },
		WithID:   func(f models.SavedFood, id string) models.SavedFood { f.ID = id; return f },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}
