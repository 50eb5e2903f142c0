package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"fittrack"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestLoadDefaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()
	require.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	require.Equal(t, "fittrack.db", cfg.DatabasePath)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-a", "https://api.example.com", "-d", "/tmp/x.db", "-t", "10", "-l", "debug")

	cfg := LoadConfig()
	require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	require.Equal(t, "/tmp/x.db", cfg.DatabasePath)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestJsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "https://json.example.com",
		"request_timeout": "5s"
	}`), 0o600))

	withArgs(t, "-c", path)

	cfg := LoadConfig()
	require.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// fields absent from the file keep their defaults
	require.Equal(t, "fittrack.db", cfg.DatabasePath)
}

func TestFlagsWinOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"api_base_url": "https://json.example.com"}`), 0o600))

	withArgs(t, "-c", path, "-a", "https://flag.example.com")

	cfg := LoadConfig()
	require.Equal(t, "https://flag.example.com", cfg.APIBaseURL)
}
