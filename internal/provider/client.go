// Package provider holds the HTTP clients for the upstream country, holiday,
// population and flag registries.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Default client settings.
const (
	DefaultTimeout = 10 * time.Second
	DefaultBurst   = 5
)

// ErrNotFound is returned when an upstream answers 404.
var ErrNotFound = errors.New("provider: resource not found")

// StatusError is returned for any non-2xx answer other than 404.
type StatusError struct {
	Provider   string
	StatusCode int
	URL        string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s returned %d: %s", e.Provider, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s returned %d", e.Provider, e.URL, e.StatusCode)
}

// DecodeError is returned when an upstream payload cannot be decoded.
type DecodeError struct {
	Provider string
	URL      string
	Cause    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode %s: %v", e.Provider, e.URL, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Config holds the settings shared by every provider client.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string

	// Timeout bounds every call, including reading the body (default: 10s).
	Timeout time.Duration

	// RateLimit is the sustained number of requests per second. Zero disables limiting.
	RateLimit float64

	// Burst is the limiter bucket size (default: 5).
	Burst int

	// HTTPClient overrides the underlying client. Timeout is ignored when set.
	HTTPClient *http.Client
}

type client struct {
	name    string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

func newClient(name string, cfg Config) *client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	c := &client{
		name:    name,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    httpClient,
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	return c
}

// getJSON performs a single GET and decodes the body into out.
// A 204 leaves out untouched.
func (c *client) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: rate limit: %w", c.name, err)
		}
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: GET %s: %w", c.name, url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrNotFound
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Provider:   c.name,
			StatusCode: resp.StatusCode,
			URL:        url,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Provider: c.name, URL: url, Cause: err}
	}
	return nil
}
