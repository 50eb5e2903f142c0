package syncable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type wireNote struct {
	ServerID int64  `json:"id,omitempty"`
	ClientID string `json:"client_id"`
	Text     string `json:"text"`
}

func noteConfig() Config[note, wireNote] {
	return Config[note, wireNote]{
		Key:    "fittrack/notes",
		Path:   "/api/notes",
		IDOf:   func(n note) string { return n.ID },
		WithID: func(n note, id string) note { n.ID = id; return n },
		ToWire: func(n note) wireNote {
			return wireNote{ClientID: n.ID, Text: n.Text}
		},
		FromWire: func(w wireNote) (note, error) {
			return note{ID: ClientID(w.ClientID, w.ServerID), Text: w.Text}, nil
		},
	}
}

type staticAuth struct {
	authed bool
}

func (s *staticAuth) IsAuthenticated(context.Context) bool { return s.authed }

type noTokens struct{}

func (noTokens) Token(context.Context) (string, bool) { return "", false }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newCollection wires a collection against the given handler and returns the
// backing store plus a request counter.
func newCollection(t *testing.T, authed bool, handler http.HandlerFunc) (*Collection[note, wireNote], *localstore.MemoryStore, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if handler != nil {
			handler(w, r)
			return
		}
		http.Error(w, "unexpected call", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store := localstore.NewMemoryStore()
	log := testLogger()
	client := remote.NewClient(srv.URL, time.Second, noTokens{}, log)
	pusher := remote.NewPusher(client, remote.RetryConfig{
		MaxAttempts: 2,
		InitialWait: time.Millisecond,
		Multiplier:  2,
	}, log)

	c := NewCollection(noteConfig(), Deps{
		Store:   store,
		Remote:  client,
		Pusher:  pusher,
		Session: &staticAuth{authed: authed},
		Log:     log,
	})
	return c, store, &calls
}

func TestCollection_OfflineRoundTrip_NoNetworkCalls(t *testing.T) {
	ctx := context.Background()
	c, _, calls := newCollection(t, false, nil)

	saved, out := c.Save(ctx, note{Text: "bench day"})
	require.True(t, out.Persisted)
	require.False(t, out.Pushed)
	require.NoError(t, out.Err)
	require.NotEmpty(t, saved.ID)

	items := c.All(ctx)
	require.Len(t, items, 1)
	require.Equal(t, saved, items[0])

	require.Zero(t, atomic.LoadInt32(calls), "offline operations must not touch the network")
}

func TestCollection_IdempotentUpsert(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, false, nil)

	first, _ := c.Save(ctx, note{Text: "v1"})
	updated := first
	updated.Text = "v2"
	_, out := c.Save(ctx, updated)
	require.True(t, out.Persisted)

	items := c.All(ctx)
	require.Len(t, items, 1)
	require.Equal(t, "v2", items[0].Text)
	require.Equal(t, first.ID, items[0].ID)
}

func TestCollection_SaveAssignsIDOnce(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, false, nil)

	saved, _ := c.Save(ctx, note{Text: "x"})
	again, _ := c.Save(ctx, saved)
	require.Equal(t, saved.ID, again.ID)
}

func TestCollection_CacheThenFallback(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	cached, err := json.Marshal([]note{{ID: "n1", Text: "cached"}})
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "fittrack/notes", cached))

	items := c.All(ctx)
	require.Len(t, items, 1)
	require.Equal(t, "cached", items[0].Text)
}

func TestCollection_ReconciliationPrefersClientIdentifier(t *testing.T) {
	ctx := context.Background()
	var method string
	c, store, _ := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_ = json.NewEncoder(w).Encode([]wireNote{
			{ServerID: 101, ClientID: "c-aaa", Text: "first"},
			{ServerID: 102, ClientID: "c-bbb", Text: "second"},
		})
	})

	items := c.All(ctx)
	require.Equal(t, http.MethodGet, method)
	require.Len(t, items, 2)
	require.Equal(t, "c-aaa", items[0].ID)
	require.Equal(t, "c-bbb", items[1].ID)

	// the mirror was overwritten wholesale with the mapped records
	value, err := store.Get(ctx, "fittrack/notes")
	require.NoError(t, err)
	var mirrored []note
	require.NoError(t, json.Unmarshal(value, &mirrored))
	require.Equal(t, items, mirrored)
}

func TestCollection_SavePushesWireShape(t *testing.T) {
	ctx := context.Background()

	var pushed wireNote
	var method string
	c, _, _ := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_ = json.NewDecoder(r.Body).Decode(&pushed)
		_, _ = w.Write([]byte(`{}`))
	})

	saved, out := c.Save(ctx, note{Text: "pushed"})
	require.Equal(t, http.MethodPost, method)
	require.True(t, out.Persisted)
	require.True(t, out.Pushed)
	require.NoError(t, out.Err)

	require.Equal(t, saved.ID, pushed.ClientID, "push payload must carry the client identifier")
	require.Equal(t, "pushed", pushed.Text)
}

func TestCollection_PushFailureKeepsLocalWrite(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			http.Error(w, "rejected", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "down", http.StatusInternalServerError)
	})

	saved, out := c.Save(ctx, note{Text: "local only"})
	require.True(t, out.Persisted)
	require.False(t, out.Pushed)
	require.Error(t, out.Err)

	// read path falls back to the mirror, which holds the write
	items := c.All(ctx)
	require.Len(t, items, 1)
	require.Equal(t, saved.ID, items[0].ID)
}

func TestCollection_DeleteIdempotence(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, false, nil)

	saved, _ := c.Save(ctx, note{Text: "bye"})

	out := c.Delete(ctx, saved.ID)
	require.True(t, out.Persisted)
	require.NoError(t, out.Err)
	require.Empty(t, c.All(ctx))

	// second delete and deleting a never-existing id are both no-ops
	out = c.Delete(ctx, saved.ID)
	require.True(t, out.Persisted)
	require.NoError(t, out.Err)

	out = c.Delete(ctx, "no-such-id")
	require.True(t, out.Persisted)
	require.NoError(t, out.Err)
}

func TestCollection_DeleteFiresBestEffortRemote(t *testing.T) {
	ctx := context.Background()

	var deletePath string
	c, _, _ := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{}`))
		case http.MethodDelete:
			deletePath = r.URL.Path
			_, _ = w.Write([]byte(`{}`))
		}
	})

	saved, _ := c.Save(ctx, note{Text: "x"})
	out := c.Delete(ctx, saved.ID)
	require.True(t, out.Persisted)
	require.True(t, out.Pushed)
	require.Equal(t, "/api/notes/"+saved.ID, deletePath)
}

func TestCollection_RemoteDeleteFailureIsFinalLocally(t *testing.T) {
	ctx := context.Background()
	c, _, calls := newCollection(t, true, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		http.Error(w, "down", http.StatusInternalServerError)
	})

	saved, _ := c.Save(ctx, note{Text: "x"})
	before := atomic.LoadInt32(calls)

	out := c.Delete(ctx, saved.ID)
	require.True(t, out.Persisted)
	require.False(t, out.Pushed)
	require.Error(t, out.Err)

	// exactly one DELETE attempt, no retry
	require.Equal(t, before+1, atomic.LoadInt32(calls))
}

func TestCollection_ByID(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, false, nil)

	saved, _ := c.Save(ctx, note{Text: "findme"})

	got, ok := c.ByID(ctx, saved.ID)
	require.True(t, ok)
	require.Equal(t, saved, got)

	_, ok = c.ByID(ctx, "absent")
	require.False(t, ok)
}

func TestCollection_UndecodableMirrorIsEmpty(t *testing.T) {
	ctx := context.Background()
	c, store, _ := newCollection(t, false, nil)

	require.NoError(t, store.Set(ctx, "fittrack/notes", []byte(`{broken`)))
	require.Empty(t, c.All(ctx))
}

func TestCollection_ConcurrentSavesCompose(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newCollection(t, false, nil)

	const n = 20
	outcomes := make(chan Outcome, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, out := c.Save(ctx, note{Text: fmt.Sprintf("note-%d", i)})
			outcomes <- out
		}(i)
	}
	wg.Wait()
	close(outcomes)

	for out := range outcomes {
		require.True(t, out.Persisted)
	}
	require.Len(t, c.All(ctx), n)
}
