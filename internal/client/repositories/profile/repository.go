// Package profile stores the single onboarding profile record.
package profile

import (
	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireProfile struct {
	ServerID int64   `json:"id,omitempty"`
	ClientID string  `json:"client_id"`
	Sex      string  `json:"sex"`
	Age      int     `json:"age"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
	Activity string  `json:"activity"`
	Goal     string  `json:"goal"`
}

func toWire(p models.Profile) wireProfile {
	return wireProfile{
		ClientID: p.ID,
		Sex:      p.Sex,
		Age:      p.Age,
		HeightCm: p.HeightCm,
		WeightKg: p.WeightKg,
		Activity: p.Activity,
		Goal:     p.Goal,
	}
}

func fromWire(w wireProfile) (models.Profile, error) {
	return models.Profile{
		ID:       syncable.ClientID(w.ClientID, w.ServerID),
		Sex:      w.Sex,
		Age:      w.Age,
		HeightCm: w.HeightCm,
		WeightKg: w.WeightKg,
		Activity: w.Activity,
		Goal:     w.Goal,
	}, nil
}

type Repository struct {
	*syncable.Document[models.Profile, wireProfile]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.Profile, wireProfile]{
		Key:      localstore.KeyProfile,
		Path:     "/api/profile",
		IDOf:     func(p models.Profile) string { return p.ID },
		WithID:   func(p models.Profile, id string) models.Profile { p.ID = id; return p },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewDocument(cfg, deps)}
}
