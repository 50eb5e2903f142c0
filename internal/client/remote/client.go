// Package remote is the thin transport layer: authenticated JSON requests
// against the versioned REST API. No retry, no caching.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/logging"
)

// TokenSource supplies the bearer credential attached to every request.
// Implemented by the session manager.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type Client struct {
	hc        *http.Client
	baseURL   string
	tokens    TokenSource
	log       logging.Logger
	userAgent string
	deviceID  string
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		baseURL:   baseURL,
		tokens:    tokens,
		log:       log,
		userAgent: "Fittrack-Client/1.0",
	}
}

// SetDeviceID attaches a device identifier header to subsequent requests.
func (c *Client) SetDeviceID(id string) {
	c.deviceID = id
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	body, err := c.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.decode(body, out)
}

// Post issues a POST with a JSON body and decodes the response into out
// when out is non-nil.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	respBody, err := c.Send(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(respBody, out)
}

// Delete issues a DELETE. The response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Send(ctx, http.MethodDelete, path, nil)
	return err
}

// Ping probes server reachability.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Send(ctx, http.MethodGet, "/api/health", nil)
	return err
}

// Send performs a single request and returns the raw response body.
// Connectivity problems map to ErrNetwork, non-2xx statuses to StatusError.
func (c *Client) Send(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.deviceID != "" {
		req.Header.Set("X-Device-Id", c.deviceID)
	}
	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "sending request", "method", method, "path", path)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	return respBody, nil
}

func (c *Client) decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
