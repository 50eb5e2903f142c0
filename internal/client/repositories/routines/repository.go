// Package routines stores the user's reusable workout templates.
package routines

import (
	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
)

type Repository struct {
	*syncable.Collection[models.Routine, wireRoutine]
}

func New(deps syncable.Deps) *Repository {
	cfg := syncable.Config[models.Routine, wireRoutine]{
		Key:      localstore.KeyRoutines,
		Path:     "/api/routines",
		IDOf:     func(r models.Routine) string { return r.ID },
		WithID:   func(r models.Routine, id string) models.Routine { r.ID = id; return r },
		ToWire:   toWire,
		FromWire: fromWire,
	}
	return &Repository{syncable.NewCollection(cfg, deps)}
}
