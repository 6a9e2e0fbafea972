// Package client is a typed HTTP client for the NativoSEO REST backend.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Per-call timeouts.
const (
	DefaultTimeout      = 15 * time.Second
	ReviewsTimeout      = 10 * time.Second
	ReviewStatsTimeout  = 5 * time.Second
	ReviewsMoreTimeout  = 8 * time.Second
	PostsTimeout        = 30 * time.Second
	UploadTimeout       = 60 * time.Second
	defaultReviewsPage  = 5
	defaultPostsPerPage = 10
)

// TokenSource yields the current session token, "" when logged out.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// HTTPError is a non 2xx response. Detail and Code come from the backend error body when present.
type HTTPError struct {
	StatusCode int
	Code       string
	Detail     string
	Method     string
	Path       string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}

	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}

// IsStatus reports whether e has the given status code.
func (e *HTTPError) IsStatus(status int) bool {
	return e != nil && e.StatusCode == status
}

// IsStatus reports whether err wraps an HTTPError with the given status code.
func IsStatus(err error, status int) bool {
	var httpErr *HTTPError

	return errors.As(err, &httpErr) && httpErr.IsStatus(status)
}

// IsUnauthorized reports a rejected or missing session token.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// Client calls the backend with the bearer token of its TokenSource.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where the bearer token is read from on every request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a client for the backend at baseURL, e.g. http://localhost:8000.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("base url %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
		tokens:     StaticToken(""),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// request describes one backend call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	timeout     time.Duration
	noCache     bool
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	target := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		target.RawQuery = r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target.String(), r.body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.noCache {
		req.Header.Set("Cache-Control", "no-cache")
		req.Header.Set("Pragma", "no-cache")
		req.Header.Set("Expires", "0")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", r.method, r.path)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "backend call",
		slog.String("method", r.method),
		slog.String("path", r.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeHTTPError(resp, r)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s", r.method, r.path)
	}

	return nil
}

func decodeHTTPError(resp *http.Response, r request) error {
	httpErr := &HTTPError{StatusCode: resp.StatusCode, Method: r.method, Path: r.path}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body struct {
		Detail json.RawMessage `json:"detail"`
		Code   string          `json:"code"`
	}
	if json.Unmarshal(data, &body) == nil {
		httpErr.Code = body.Code
		// detail is a string for domain errors and a list for some proxies
		var detail string
		if json.Unmarshal(body.Detail, &detail) == nil {
			httpErr.Detail = detail
		} else if len(body.Detail) > 0 {
			httpErr.Detail = string(body.Detail)
		}
	}

	return httpErr
}

func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "encode request body")
	}

	return bytes.NewReader(data), nil
}
