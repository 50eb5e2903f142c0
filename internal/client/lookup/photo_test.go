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

func TestAnalyzePhoto(t *testing.T) {
	var uploaded []byte

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/api/photos", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(photoUploadTicket{
			PhotoID:   "p-1",
			UploadURL: srv.URL + "/blob/p-1",
		})
	})
	mux.HandleFunc("/blob/p-1", func(w http.ResponseWriter, r *http.Request) {
		uploaded, _ = io.ReadAll(r.Body)
	})
	mux.HandleFunc("/api/photos/p-1/analyze", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(PhotoAnalysis{
			Items:      []FoodItem{{Name: "Pasta", Calories: 550}},
			Confidence: 0.82,
		})
	})

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	analyzer := NewRemotePhotoAnalyzer(remote.NewClient(srv.URL, time.Second, noTokens{}, log))

	analysis, err := analyzer.Analyze(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	require.Equal(t, []byte("jpeg-bytes"), uploaded)
	require.Len(t, analysis.Items, 1)
	require.InDelta(t, 0.82, analysis.Confidence, 1e-9)
}
