// Package client is a Go client for the tspbb HTTP service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/tspbb/internal/api"
	"github.com/katalvlaran/tspbb/internal/input"
)

// DefaultURL matches the server's default listen address.
const DefaultURL = "http://localhost:8000"

// ErrDeadline is returned with a partial response when the server hit its
// solve deadline (HTTP 504).
var ErrDeadline = errors.New("client: server solve deadline exceeded")

// StatusError is returned for non-2xx answers other than 504.
type StatusError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *StatusError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("client: %d %s (request %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("client: %d %s", e.StatusCode, e.Message)
}

// Client talks to one tspbb server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New returns a client for baseURL; "" means DefaultURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 2 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solve posts rows (+Inf for missing edges) to /solve. On 504 it returns the
// partial response together with ErrDeadline.
func (c *Client) Solve(ctx context.Context, rows [][]float64) (*api.SolveResponse, error) {
	body, err := json.Marshal(api.SolveRequest{Matrix: input.ToNullable(rows)})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusGatewayTimeout:
		var out api.SolveResponse
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("client: decode response: %w", err)
		}
		if resp.StatusCode == http.StatusGatewayTimeout {
			return &out, ErrDeadline
		}
		return &out, nil
	default:
		return nil, decodeError(resp, data)
	}
}

// Health checks GET /healthz.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp, data)
	}
	return nil
}

func decodeError(resp *http.Response, data []byte) error {
	e := &StatusError{StatusCode: resp.StatusCode, RequestID: resp.Header.Get("X-Request-ID")}
	var body api.ErrorResponse
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		e.Message = body.Error
	} else {
		e.Message = strings.TrimSpace(string(data))
	}
	return e
}
