// Package kampusapi is the HTTP adapter for the Kampüs REST API.
// Every call carries the caller's bearer token; responses are mapped onto
// internal/errors codes so handlers can react without knowing HTTP details.
package kampusapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/kampus/admin-console/internal/errors"
	"github.com/kampus/admin-console/internal/observability/statsd"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout  = 15 * time.Second
	maxErrorBody    = 64 << 10
	maxResponseBody = 8 << 20
	userAgent       = "kampus-admin-console"
)

// Config configures the API client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Transport is the base round tripper; nil uses http.DefaultTransport.
	Transport http.RoundTripper
	// Metrics receives request timings and error counts; nil disables them.
	Metrics statsd.Sink
	Logger  *slog.Logger
}

// Client talks to the Kampüs REST API.
type Client struct {
	base      *url.URL
	timeout   time.Duration
	transport http.RoundTripper
	metrics   statsd.Sink
	logger    *slog.Logger
}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return nil, errors.New("kampusapi: base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("kampusapi: invalid base URL %q", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = (*statsd.Client)(nil)
	}

	return &Client{base: u, timeout: timeout, transport: transport, metrics: metrics, logger: logger}, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.base.String() }

// httpClient returns a client that signs requests with token.
// An empty token yields an unsigned client (login only).
func (c *Client) httpClient(token string) *http.Client {
	if token == "" {
		return &http.Client{Timeout: c.timeout, Transport: c.transport}
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &http.Client{
		Timeout:   c.timeout,
		Transport: &oauth2.Transport{Source: src, Base: c.transport},
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = c.base.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// call describes one API request.
type call struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, in call) error {
	var body io.Reader
	if in.body != nil {
		b, err := json.Marshal(in.body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", in.method, in.path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, in.method, c.endpoint(in.path, in.query), body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", in.method, in.path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if in.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient(in.token).Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "api request failed",
			"method", in.method, "path", in.path, "error", err)
		err = apperrors.FromTransport(err)
		c.observe(in, 0, time.Since(start), err)
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.DebugContext(ctx, "close api response body", "error", cerr)
		}
	}()

	c.logger.DebugContext(ctx, "api request",
		"method", in.method,
		"path", in.path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := c.decodeError(ctx, resp)
		c.observe(in, resp.StatusCode, time.Since(start), err)
		return err
	}
	c.observe(in, resp.StatusCode, time.Since(start), nil)

	if in.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBody))
	if err := dec.Decode(in.out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.Wrapf(err, apperrors.ErrCodeInternal, "decode %s %s", in.method, in.path)
	}
	return nil
}

// observe records one API round trip. status is 0 when no response arrived.
func (c *Client) observe(in call, status int, d time.Duration, err error) {
	tags := map[string]string{
		"method":   in.method,
		"endpoint": metricEndpoint(in.path),
		"status":   strconv.Itoa(status),
	}
	c.metrics.Timing("api.request", d, tags)
	if err != nil {
		tags["code"] = string(apperrors.GetCode(err))
		c.metrics.Count("api.error", 1, tags)
	}
}

// metricEndpoint replaces numeric path segments so ids do not explode tag cardinality.
func metricEndpoint(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if _, err := strconv.ParseInt(p, 10, 64); err == nil {
			parts[i] = "id"
		}
	}
	return strings.Join(parts, "/")
}
