// Package cli implements the interactive Fittrack client.
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/config"
	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/bodyweight"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/foodlog"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/macrotargets"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/profile"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/routines"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/runs"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/syncable"
	"github.com/dmitrijs2005/fittrack/internal/client/repositories/workouts"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	store   localstore.Store
	session *session.Manager
	auth    *services.AuthService

	Profile  *profile.Repository
	Targets  *macrotargets.Repository
	Routines *routines.Repository
	Workouts *workouts.Repository
	Weights  *bodyweight.Repository
	Food     *foodlog.Repository
	Runs     *runs.Repository

	Mode   Mode
	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := newLogger(cfg.LogLevel)

	store, err := localstore.NewSQLiteStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	sess := session.NewManager(store, log)
	sess.Load(ctx)

	client := remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sess, log)
	if deviceID, err := sess.DeviceID(ctx); err == nil {
		client.SetDeviceID(deviceID)
	} else {
		log.Warn(ctx, "device id unavailable", "error", err)
	}

	pusher := remote.NewPusher(client, remote.DefaultRetryConfig(), log)
	deps := syncable.Deps{
		Store:   store,
		Remote:  client,
		Pusher:  pusher,
		Session: sess,
		Log:     log,
	}

	return &App{
		config:   cfg,
		log:      log,
		store:    store,
		session:  sess,
		auth:     services.NewAuthService(client, sess, log),
		Profile:  profile.New(deps),
		Targets:  macrotargets.New(deps),
		Routines: routines.New(deps),
		Workouts: workouts.New(deps),
		Weights:  bodyweight.New(deps),
		Food:     foodlog.New(deps),
		Runs:     runs.New(deps),
		Mode:     ModeOffline,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func newLogger(level string) logging.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	return logging.NewSlogLogger(slog.New(handler))
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.session.IsAuthenticated(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher probes the server periodically and flips the
// displayed mode. Repositories do not consult the mode; they decide per call.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}
		case <-ctx.Done():
			return
		}
	}
}
