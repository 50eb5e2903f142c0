package syncable

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Document is the single-record variant of the protocol, used for the
// profile and the macro targets. The REST path carries no /:id suffix and
// the mirror holds one JSON object instead of an array.
type Document[T any, W any] struct {
	cfg  Config[T, W]
	deps Deps
}

func NewDocument[T any, W any](cfg Config[T, W], deps Deps) *Document[T, W] {
	return &Document[T, W]{cfg: cfg, deps: deps}
}

// Get returns the record. The read path mirrors Collection.All: server
// preferred when authenticated, local fallback on any failure, never an
// error. The second result is false when no record exists anywhere.
func (d *Document[T, W]) Get(ctx context.Context) (T, bool) {
	if !d.deps.Session.IsAuthenticated(ctx) {
		return d.loadLocal(ctx)
	}

	var wire W
	if err := d.deps.Remote.Get(ctx, d.cfg.Path, &wire); err != nil {
		d.deps.Log.Warn(ctx, "remote read failed, serving local mirror",
			"collection", d.cfg.Key, "error", err)
		return d.loadLocal(ctx)
	}

	item, err := d.cfg.FromWire(wire)
	if err != nil {
		d.deps.Log.Warn(ctx, "remote record unmappable, serving local mirror",
			"collection", d.cfg.Key, "error", err)
		return d.loadLocal(ctx)
	}

	d.storeLocal(ctx, item)
	return item, true
}

// Save follows the collection write protocol for a single record.
func (d *Document[T, W]) Save(ctx context.Context, item T) (T, Outcome) {
	if d.cfg.IDOf(item) == "" {
		item = d.cfg.WithID(item, uuid.NewString())
	}

	err := d.storeLocal(ctx, item)
	out := Outcome{Persisted: err == nil, Err: err}
	if err != nil {
		d.deps.Log.Error(ctx, "local write failed", "collection", d.cfg.Key, "error", err)
		return item, out
	}

	if !d.deps.Session.IsAuthenticated(ctx) {
		return item, out
	}

	if _, err := d.deps.Pusher.Push(ctx, http.MethodPost, d.cfg.Path, d.cfg.ToWire(item)); err != nil {
		d.deps.Log.Warn(ctx, "push failed, change stays local",
			"collection", d.cfg.Key, "error", err)
		out.Err = err
		return item, out
	}

	out.Pushed = true
	return item, out
}

func (d *Document[T, W]) loadLocal(ctx context.Context) (T, bool) {
	var zero T

	value, err := d.deps.Store.Get(ctx, d.cfg.Key)
	if err != nil {
		return zero, false
	}

	var item T
	if err := json.Unmarshal(value, &item); err != nil {
		d.deps.Log.Warn(ctx, "mirror undecodable, treating as absent",
			"collection", d.cfg.Key, "error", err)
		return zero, false
	}
	return item, true
}

func (d *Document[T, W]) storeLocal(ctx context.Context, item T) error {
	value, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return d.deps.Store.Set(ctx, d.cfg.Key, value)
}
