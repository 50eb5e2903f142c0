// Package runs stores recorded runs.
package runs

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type wireRun struct {
	ServerID    int64   `json:"id,omitempty"`
	ClientID    string  `json:"client_id"`
	Date        string  `json:"date"`
	DistanceKm  float64 `json:"distance_km"`
	DurationSec int     `json:"duration_sec"`
}

func toWire(r models.RunEntry) wireRun {
	return wireRun{
		ClientID:    r.ID,
		Date:        r.Date,
		DistanceKm:  r.DistanceKm,
		DurationSec: r.DurationSec,
	}
}

func fromWire(w wireRun) (models.RunEntry, error) {
	return models.RunEntry{
		ID:          syncable.ClientID(w.ClientID, w.ServerID),
		Date:        w.Date,
		DistanceKm:  w.DistanceKm,
		DurationSec: w.DurationSec,
	}, nil
}

type Repository struct {
	*syncable.Collection[models.RunEntry, wireRun]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.RunEntry, wireRun]{
		Key:      localstore.KeyRuns,
		Path:     "/api/runs",
		IDOf:     func(r models.RunEntry) string { return r.ID },
		WithID:   func(r models.RunEntry, id string) models.RunEntry { r.ID = id; return r },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}

// TotalDistanceKm sums the distance over every recorded run.
func (r *Repository) TotalDistanceKm(ctx context.Context) float64 {
	var total float64
	for _, run := range r.All(ctx) {
		total += run.DistanceKm
	}
	return total
}
