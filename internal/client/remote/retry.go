package remote

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// RetryConfig controls push retry behavior.
type RetryConfig struct {
	MaxAttempts int           // maximum number of attempts
	InitialWait time.Duration // wait before first retry
	MaxWait     time.Duration // cap on the wait between retries
	Multiplier  float64       // backoff multiplier
}

// DefaultRetryConfig returns the bounded policy used for upstream pushes.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	}
}

// PushError wraps a push failure with the attempts made.
type PushError struct {
	Path     string
	Err      error
	Attempts int
}

func (e *PushError) Error() string {
	return fmt.Sprintf("push %s failed after %d attempts: %v", e.Path, e.Attempts, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// Pusher wraps Client writes with the bounded retry policy. It is used for
// "push this local change to the server" operations; the local write has
// already been applied by the time a push runs, so exhausting the retries
// only means the change stays local.
type Pusher struct {
	client *Client
	cfg    RetryConfig
	log    logging.Logger
}

func NewPusher(client *Client, cfg RetryConfig, log logging.Logger) *Pusher {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Pusher{client: client, cfg: cfg, log: log}
}

// Push performs the request, retrying on network failures and 5xx responses
// with exponential backoff. 4xx responses are a permanent rejection and
// return immediately. The total wait is bounded; context cancellation aborts
// between attempts.
func (p *Pusher) Push(ctx context.Context, method, path string, body any) ([]byte, error) {
	wait := p.cfg.InitialWait

	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		data, err := p.client.Send(ctx, method, path, body)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !Retryable(err) || attempt == p.cfg.MaxAttempts {
			return nil, &PushError{Path: path, Err: err, Attempts: attempt}
		}

		p.log.Warn(ctx, "push attempt failed, retrying",
			"path", path, "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}

		wait = time.Duration(float64(wait) * p.cfg.Multiplier)
		if p.cfg.MaxWait > 0 && wait > p.cfg.MaxWait {
			wait = p.cfg.MaxWait
		}
	}

	return nil, &PushError{Path: path, Err: lastErr, Attempts: p.cfg.MaxAttempts}
}
