package lookup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type noTokens struct{}

func (noTokens) Token(context.Context) (string, bool) { return "", false }

func newDB(t *testing.T, handler http.HandlerFunc) *RemoteFoodDatabase {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewRemoteFoodDatabase(remote.NewClient(srv.URL, time.Second, noTokens{}, log))
}

func TestSearch(t *testing.T) {
	var gotQuery string
	db := newDB(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode([]FoodItem{
			{Name: "Skyr", Brand: "Arla", Calories: 63, ProteinG: 11},
		})
	})

	items, err := db.Search(context.Background(), "skyr natural")
	require.NoError(t, err)
	require.Equal(t, "skyr natural", gotQuery)
	require.Len(t, items, 1)
	require.Equal(t, "Skyr", items[0].Name)
}

func TestByBarcode(t *testing.T) {
	db := newDB(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/foods/barcode/5711953056307" {
			_ = json.NewEncoder(w).Encode(FoodItem{Name: "Skyr", Barcode: "5711953056307"})
			return
		}
		http.NotFound(w, r)
	})

	item, found, err := db.ByBarcode(context.Background(), "5711953056307")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Skyr", item.Name)

	_, found, err = db.ByBarcode(context.Background(), "0000000000000")
	require.NoError(t, err, "unknown barcode is not an error")
	require.False(t, found)
}
