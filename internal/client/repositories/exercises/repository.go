// Package exercises keeps the device-local exercise catalogue the routines
// reference by name. There is no server endpoint for it, so the repository
// works against the local store alone.
package exercises

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type Repository struct {
	store localstore.Store
	log   logging.Logger
	mu    sync.Mutex
}

func New(store localstore.Store, log logging.Logger) *Repository {
	return &Repository{store: store, log: log}
}

func (r *Repository) All(ctx context.Context) []models.Exercise {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Save upserts by ID, assigning one to new entries.
func (r *Repository) Save(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(ctx)
	replaced := false
	for i := range items {
		if items[i].ID == e.ID {
			items[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, e)
	}
	return e, r.persist(ctx, items)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.load(ctx)
	kept := make([]models.Exercise, 0, len(items))
	for _, e := range items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return r.persist(ctx, kept)
}

func (r *Repository) load(ctx context.Context) []models.Exercise {
	value, err := r.store.Get(ctx, localstore.KeyExercises)
	if err != nil {
		return []models.Exercise{}
	}

	var items []models.Exercise
	if err := json.Unmarshal(value, &items); err != nil {
		r.log.Warn(ctx, "exercise catalogue undecodable, treating as empty", "error", err)
		return []models.Exercise{}
	}
	if items == nil {
		items = []models.Exercise{}
	}
	return items
}

func (r *Repository) persist(ctx context.Context, items []models.Exercise) error {
	value, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, localstore.KeyExercises, value)
}
