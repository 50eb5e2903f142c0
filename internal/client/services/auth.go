// Package services holds the thin use-case layer between the CLI and the
// transport.
package services

import (
	"context"

	"github.com/dmitrijs2005/fittrack/internal/client/remote"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/logging"
)

type AuthService struct {
	remote  *remote.Client
	session *session.Manager
	log     logging.Logger
}

func NewAuthService(remote *remote.Client, session *session.Manager, log logging.Logger) *AuthService {
	return &AuthService{remote: remote, session: session, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and stores it in the
// session. The password slice is the caller's to wipe.
func (s *AuthService) Login(ctx context.Context, email string, password []byte) error {
	var resp loginResponse
	req := loginRequest{Email: email, Password: string(password)}
	if err := s.remote.Post(ctx, "/api/login", req, &resp); err != nil {
		return err
	}
	return s.session.SetToken(ctx, resp.Token)
}

// Logout clears the session and purges the local mirrors.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

// Ping probes server reachability.
func (s *AuthService) Ping(ctx context.Context) error {
	return s.remote.Ping(ctx)
}
