// Package bodyweight stores scale measurements.
package bodyweight

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
	WeightKg float64 `json:"weight_kg"`
}

func toWire(e models.BodyWeightEntry) wireEntry {
	return wireEntry{ClientID: e.ID, Date: e.Date, WeightKg: e.WeightKg}
}

func fromWire(w wireEntry) (models.BodyWeightEntry, error) {
	return models.BodyWeightEntry{
		ID:       syncable.ClientID(w.ClientID, w.ServerID),
		Date:     w.Date,
		WeightKg: w.WeightKg,
	}, nil
}

type Repository struct {
	*syncable.Collection[models.BodyWeightEntry, wireEntry]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.BodyWeightEntry, wireEntry]{
		Key:      localstore.KeyBodyWeights,
		Path:     "/api/body-weights",
		IDOf:     func(e models.BodyWeightEntry) string { return e.ID },
		WithID:   func(e models.BodyWeightEntry, id string) models.BodyWeightEntry { e.ID = id; return e },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}

// Latest returns the entry with the greatest date. Dates are YYYY-MM-DD so
// lexicographic comparison orders them correctly.
func (r *Repository) Latest(ctx context.Context) (models.BodyWeightEntry, bool) {
	var latest models.BodyWeightEntry
	found := false
	for _, e := range r.All(ctx) {
		if !found || e.Date > latest.Date {
			latest = e
			found = true
		}
	}
	return latest, found
}
