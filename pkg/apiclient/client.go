// Package apiclient wraps outbound calls to the Flow PMS REST backend:
// bearer auth, envelope decoding, and mapping of transport/response failures
// into user-facing error categories.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/flowpms/flowpms-go/pkg/config"
	pkgerrors "github.com/flowpms/flowpms-go/pkg/errors"
	"github.com/flowpms/flowpms-go/pkg/logger"
	"github.com/flowpms/flowpms-go/pkg/metrics"
	"github.com/flowpms/flowpms-go/pkg/types"
)

const responseBodyReadLimit int64 = 1 << 20

// TokenProvider supplies the bearer token attached to outbound requests.
// An empty token means the request is sent unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) string
}

// ErrorNotifier receives the single user-facing notification emitted for
// each failed request.
type ErrorNotifier interface {
	Error(ctx context.Context, message string)
}

// Client is the thin HTTP adapter every domain service dispatches through.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenProvider
	notifier   ErrorNotifier
	logg       *logger.Logger
	metrics    *metrics.ClientMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenProvider attaches a bearer token source.
func WithTokenProvider(tokens TokenProvider) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithNotifier attaches the user-facing error notifier.
func WithNotifier(notifier ErrorNotifier) Option {
	return func(c *Client) { c.notifier = notifier }
}

// WithMetrics attaches request instrumentation.
func WithMetrics(m *metrics.ClientMetrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds the adapter for the configured base URL.
func New(cfg config.APIConfig, logg *logger.Logger, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logg:       logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client, nil
}

// Get issues a GET and decodes the envelope data into out when non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (*types.Envelope, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error) {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error) {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, query url.Values, body, out any) (*types.Envelope, error) {
	return c.do(ctx, http.MethodPatch, path, query, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, query url.Values, out any) (*types.Envelope, error) {
	return c.do(ctx, http.MethodDelete, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*types.Envelope, error) {
	started := time.Now()
	env, err := c.execute(ctx, method, path, query, body, out)
	outcome := "success"
	if err != nil {
		outcome = "failure"
		c.notifyOnce(ctx, err)
	}
	c.metrics.ObserveRequest(method, outcome, time.Since(started))
	return env, err
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body, out any) (*types.Envelope, error) {
	endpoint := c.buildURL(path, query)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token(ctx)); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if c.logg != nil {
		reqCtx := c.logg.WithFields(ctx, map[string]any{"method": method, "path": path})
		c.logg.Debug(reqCtx, "api request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "network connection failed, check connectivity")
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeTransport, err, "read response body")
	}

	var env types.Envelope
	if len(raw) > 0 {
		// A malformed body on an error status still maps by status below.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &env, statusError(resp.StatusCode, env.Message)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "unknown error occurred"
		}
		return &env, pkgerrors.New(pkgerrors.CodeServer, msg)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &env, pkgerrors.Wrap(pkgerrors.CodeServer, err, "decode response data")
		}
	}
	return &env, nil
}

// statusError maps HTTP failure codes into fixed user-facing categories.
// Unmapped codes fall back to the server-provided message or a generic one.
func statusError(status int, serverMessage string) error {
	switch status {
	case http.StatusBadRequest:
		msg := serverMessage
		if msg == "" {
			msg = "invalid request"
		}
		return pkgerrors.New(pkgerrors.CodeValidation, msg)
	case http.StatusUnauthorized:
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	case http.StatusForbidden:
		return pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	case http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "requested resource not found")
	case http.StatusTooManyRequests:
		return pkgerrors.New(pkgerrors.CodeRateLimit, "too many requests, try again shortly")
	case http.StatusInternalServerError:
		return pkgerrors.New(pkgerrors.CodeServer, "server error occurred")
	default:
		msg := serverMessage
		if msg == "" {
			msg = "unknown error occurred"
		}
		return pkgerrors.New(pkgerrors.CodeServer, msg).WithDetails(map[string]any{"status": status})
	}
}

// notifyOnce surfaces exactly one user-facing notification per failed call.
func (c *Client) notifyOnce(ctx context.Context, err error) {
	if c.logg != nil {
		c.logg.Error(ctx, "api request failed", err)
	}
	if c.notifier == nil {
		return
	}
	c.notifier.Error(ctx, pkgerrors.UserMessage(err))
}

func (c *Client) buildURL(path string, query url.Values) string {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}
