// Package session holds the authenticated-or-not state every repository
// consults. The manager is passed in explicitly (constructor injection)
// rather than living in a process-wide global, so tests can flip between
// authenticated and local-only behavior deterministically.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/fittrack/internal/client/localstore"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/shared"
)

type Manager struct {
	store localstore.Store
	log   logging.Logger

	mu    sync.RWMutex
	token string
}

func NewManager(store localstore.Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Load restores the persisted credential, if any. Intended to run once at
// startup; a read failure just leaves the session logged out.
func (m *Manager) Load(ctx context.Context) {
	value, err := m.store.Get(ctx, localstore.KeyAuthToken)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.token = string(value)
	m.mu.Unlock()
}

// SetToken persists the bearer credential and marks the session authenticated.
func (m *Manager) SetToken(ctx context.Context, token string) error {
	if err := m.store.Set(ctx, localstore.KeyAuthToken, []byte(token)); err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

// Token returns the current credential. The second result is false when the
// session is logged out or the credential has expired.
func (m *Manager) Token(_ context.Context) (string, bool) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" || tokenExpired(token) {
		return "", false
	}
	return token, true
}

// IsAuthenticated reports whether repository operations should take the
// server-backed path.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	_, ok := m.Token(ctx)
	return ok
}

// Logout clears the credential and purges every local mirror. This is the
// only operation that touches collection keys without going through the
// per-entity repositories.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()

	if err := m.store.RemoveMany(ctx, localstore.DataKeys()); err != nil {
		return fmt.Errorf("failed to clear local data: %w", err)
	}

	m.log.Info(ctx, "session cleared, local data purged")
	return nil
}

// DeviceID returns the stable device identifier, generating and persisting
// one on first use. The identifier survives logout.
func (m *Manager) DeviceID(ctx context.Context) (string, error) {
	value, err := m.store.Get(ctx, localstore.KeyDeviceID)
	if err == nil && len(value) > 0 {
		return string(value), nil
	}

	id, err := shared.MakeRandHexString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate device id: %w", err)
	}
	if err := m.store.Set(ctx, localstore.KeyDeviceID, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to persist device id: %w", err)
	}
	return id, nil
}

// tokenExpired inspects a JWT credential's exp claim without verifying the
// signature (verification is the server's job). Opaque non-JWT tokens are
// treated as unexpired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
