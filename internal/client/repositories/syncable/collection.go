package syncable

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// Config describes one entity collection: where its mirror lives, which REST
// path serves it, and the pure mapping pair between the local shape T and the
// server's wire shape W.
type Config[T any, W any] struct {
	Key  string // localstore key of the mirror
	Path string // REST collection path, e.g. "/api/workouts"

	IDOf   func(T) string
	WithID func(T, string) T

	// ToWire produces the server payload. It must include the client
	// identifier under the field the server persists and echoes back, so a
	// record created offline is never duplicated on a later push.
	ToWire func(T) W

	// FromWire maps a server record into the local shape. The returned
	// entity's ID must be the echoed client identifier, never the server key.
	FromWire func(W) (T, error)
}

// Collection applies the shared protocol for one entity type.
//
// The mutex serializes read-modify-write of the mirror so two concurrent
// saves compose instead of the second silently discarding the first.
type Collection[T any, W any] struct {
	cfg  Config[T, W]
	deps Deps
	mu   sync.Mutex
}

func NewCollection[T any, W any](cfg Config[T, W], deps Deps) *Collection[T, W] {
	return &Collection[T, W]{cfg: cfg, deps: deps}
}

// All returns the collection. Authenticated sessions prefer the server and
// refresh the mirror on success; any remote failure falls back to the
// unmodified mirror. Reads never return an error to the caller.
func (c *Collection[T, W]) All(ctx context.Context) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.deps.Session.IsAuthenticated(ctx) {
		return c.loadLocal(ctx)
	}

	var wires []W
	if err := c.deps.Remote.Get(ctx, c.cfg.Path, &wires); err != nil {
		c.deps.Log.Warn(ctx, "remote read failed, serving local mirror",
			"collection", c.cfg.Key, "error", err)
		return c.loadLocal(ctx)
	}

	items := make([]T, 0, len(wires))
	for _, w := range wires {
		item, err := c.cfg.FromWire(w)
		if err != nil {
			c.deps.Log.Warn(ctx, "remote record unmappable, serving local mirror",
				"collection", c.cfg.Key, "error", err)
			return c.loadLocal(ctx)
		}
		items = append(items, item)
	}

	c.storeLocal(ctx, items)
	return items
}

// ByID returns the entity with the given client identifier, if present.
func (c *Collection[T, W]) ByID(ctx context.Context, id string) (T, bool) {
	for _, item := range c.All(ctx) {
		if c.cfg.IDOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Save upserts the entity into the mirror (assigning a client identifier to
// new records) and, when authenticated, pushes the server-shaped payload
// upstream through the bounded-retry writer. The local write happens
// unconditionally and never blocks on the network; a push failure is
// reported in the Outcome and logged, not thrown and not queued for replay.
func (c *Collection[T, W]) Save(ctx context.Context, item T) (T, Outcome) {
	if c.cfg.IDOf(item) == "" {
		item = c.cfg.WithID(item, uuid.NewString())
	}
	id := c.cfg.IDOf(item)

	c.mu.Lock()
	items := c.loadLocal(ctx)
	replaced := false
	for i := range items {
		if c.cfg.IDOf(items[i]) == id {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	err := c.storeLocal(ctx, items)
	c.mu.Unlock()

	out := Outcome{Persisted: err == nil, Err: err}
	if err != nil {
		c.deps.Log.Error(ctx, "local write failed",
			"collection", c.cfg.Key, "id", id, "error", err)
		return item, out
	}

	if !c.deps.Session.IsAuthenticated(ctx) {
		return item, out
	}

	if _, err := c.deps.Pusher.Push(ctx, http.MethodPost, c.cfg.Path, c.cfg.ToWire(item)); err != nil {
		c.deps.Log.Warn(ctx, "push failed, change stays local",
			"collection", c.cfg.Key, "id", id, "error", err)
		out.Err = err
		return item, out
	}

	out.Pushed = true
	return item, out
}

// Delete removes the entity from the mirror immediately; the local removal
// is final regardless of the server leg. Deleting an absent id is a no-op.
// When authenticated, one best-effort DELETE is fired - no retry.
func (c *Collection[T, W]) Delete(ctx context.Context, id string) Outcome {
	c.mu.Lock()
	items := c.loadLocal(ctx)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if c.cfg.IDOf(item) != id {
			kept = append(kept, item)
		}
	}
	var err error
	if len(kept) != len(items) {
		err = c.storeLocal(ctx, kept)
	}
	c.mu.Unlock()

	out := Outcome{Persisted: err == nil, Err: err}
	if err != nil {
		c.deps.Log.Error(ctx, "local delete failed",
			"collection", c.cfg.Key, "id", id, "error", err)
		return out
	}

	if !c.deps.Session.IsAuthenticated(ctx) {
		return out
	}

	if err := c.deps.Remote.Delete(ctx, c.cfg.Path+"/"+id); err != nil {
		c.deps.Log.Warn(ctx, "remote delete failed, not retried",
			"collection", c.cfg.Key, "id", id, "error", err)
		out.Err = err
		return out
	}

	out.Pushed = true
	return out
}

// loadLocal decodes the mirror. Absent key or undecodable blob both mean an
// empty collection; a storage read never fails the caller.
func (c *Collection[T, W]) loadLocal(ctx context.Context) []T {
	value, err := c.deps.Store.Get(ctx, c.cfg.Key)
	if err != nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(value, &items); err != nil {
		c.deps.Log.Warn(ctx, "mirror undecodable, treating as empty",
			"collection", c.cfg.Key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Collection[T, W]) storeLocal(ctx context.Context, items []T) error {
	value, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.deps.Store.Set(ctx, c.cfg.Key, value)
}
