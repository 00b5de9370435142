// Package mojang fetches the published blocked servers list.
package mojang

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/haukened/blockedservers/internal/blocked/common/log"
	"github.com/haukened/blockedservers/internal/blocked/domain"
	"github.com/haukened/blockedservers/internal/blocked/repos/blocklist/parsers"
)

// DefaultURL is where Mojang publishes the blocked servers list.
const DefaultURL = "https://sessionserver.mojang.com/blockedservers"

// DefaultTimeout bounds a whole fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// ErrRequest is matched by every error returned from Fetch.
var ErrRequest = errors.New("blocked servers request failed")

// RequestError describes a failed fetch. StatusCode is 0 when no response was received.
type RequestError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrRequest) succeed for any RequestError.
func (e *RequestError) Is(target error) bool { return target == ErrRequest }

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	URL        string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     log.Logger
}

// Client performs a single GET of the blocked servers list per Fetch call.
type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
	logger  log.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) (*Client, error) {
	c := &Client{
		url:     strings.TrimSpace(opts.URL),
		timeout: opts.Timeout,
		http:    opts.HTTPClient,
		logger:  opts.Logger,
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	if !strings.HasPrefix(c.url, "http://") && !strings.HasPrefix(c.url, "https://") {
		return nil, fmt.Errorf("invalid blocked servers url %q: must be http or https", c.url)
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = log.NewNoopLogger()
	}
	return c, nil
}

// URL returns the endpoint the client fetches from.
func (c *Client) URL() string { return c.url }

// Fetch downloads and parses the list.
func (c *Client) Fetch(ctx context.Context) (domain.HashSet, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.HashSet{}, c.fail(0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.HashSet{}, c.fail(0, fmt.Errorf("do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.HashSet{}, c.fail(resp.StatusCode, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	hashes, err := parsers.ParseHashList(resp.Body, c.url, c.logger)
	if err != nil {
		return domain.HashSet{}, c.fail(resp.StatusCode, fmt.Errorf("read body: %w", err))
	}

	c.logger.Debug(map[string]any{
		"url":      c.url,
		"entries":  len(hashes),
		"duration": time.Since(start).String(),
	}, "blocked_servers_fetched")
	return domain.NewHashSet(hashes), nil
}

func (c *Client) fail(status int, err error) error {
	c.logger.Warn(map[string]any{"url": c.url, "status": status, "error": err}, "blocked_servers_fetch_failed")
	return &RequestError{URL: c.url, StatusCode: status, Err: err}
}
