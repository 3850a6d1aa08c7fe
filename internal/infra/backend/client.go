// Package backend is the typed REST client of the TradeFood backend. One
// exported method per backend call, grouped per resource file; together they
// implement the repository interfaces of the domain.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tradefood/config"
	deliverycontext "tradefood/internal/delivery/context"
	domainerrors "tradefood/internal/domain/errors"
	"tradefood/internal/domain/state"
	"tradefood/internal/errors"
)

const (
	defaultTimeout   = 15 * time.Second
	maxErrorBodySize = 64 << 10
)

// TokenSource returns the bearer token to attach to a request, empty for none.
type TokenSource func(ctx context.Context) (string, error)

// SessionTokenSource reads the access token from the session carried by ctx.
func SessionTokenSource(ctx context.Context) (string, error) {
	sess, ok := state.FromContext(ctx)
	if !ok {
		return "", nil
	}

	return sess.Auth.Token(ctx)
}

// Client is the TradeFood backend client.
type Client struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	tokenSource TokenSource
	logger      *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(source TokenSource) Option {
	return func(c *Client) { c.tokenSource = source }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// New creates a client for baseURL. Tokens come from the request's session by default.
func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		tokenSource: SessionTokenSource,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClient is the Fx constructor.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	opts := []Option{WithTimeout(cfg.Backend.Timeout)}
	if cfg.Backend.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.Backend.UserAgent))
	}

	return New(cfg.Backend.BaseURL, logger, opts...)
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// do performs one call. body is JSON-encoded when not nil; out, when not nil,
// receives the decoded response. Failures are *domainerrors.BackendError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "failed to encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log(ctx).Warn("Backend unreachable",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return domainerrors.NewBackendError(errors.WithStack(err), 0, "", "")
	}
	defer resp.Body.Close()

	c.log(ctx).Debug("Backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		code, message := extractError(raw)

		return domainerrors.NewBackendError(nil, resp.StatusCode, code, message)
	}

	if out == nil {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainerrors.NewBackendError(errors.WithStack(err), 0, "", "")
	}
	if err := decodeBody(raw, out); err != nil {
		return domainerrors.NewBackendError(
			errors.Wrapf(err, "failed to decode %s %s", method, path),
			http.StatusBadGateway, "", "",
		)
	}

	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokenSource == nil {
		return nil
	}

	token, err := c.tokenSource(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to read access token")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}

// decodeBody decodes raw into out, unwrapping a {"data": ...} envelope when present.
func decodeBody(raw []byte, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	if raw[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			raw = envelope.Data
		}
	}

	return json.Unmarshal(raw, out)
}

// extractError pulls a business code and a human message out of an error body.
// Recognised shapes: {"message": "..."}, {"message": ["..."]}, {"error": "..."},
// {"error": {"message": "...", "code": "..."}}, {"errors": ["..." | {"message": "..."}]}.
func extractError(raw []byte) (code, message string) {
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", strings.TrimSpace(string(raw))
	}

	code = asString(body["code"])

	if message = asMessage(body["message"]); message != "" {
		return code, message
	}

	if errField, ok := body["error"]; ok {
		if message = asString(errField); message != "" {
			return code, message
		}

		var nested struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		}
		if json.Unmarshal(errField, &nested) == nil {
			if code == "" {
				code = nested.Code
			}
			if nested.Message != "" {
				return code, nested.Message
			}
		}
	}

	var list []json.RawMessage
	if json.Unmarshal(body["errors"], &list) == nil && len(list) > 0 {
		return code, asMessage(list[0])
	}

	return code, ""
}

// asMessage accepts a string, a list of strings, or an object with a message.
func asMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if s := asString(raw); s != "" {
		return s
	}

	var list []string
	if json.Unmarshal(raw, &list) == nil && len(list) > 0 {
		return list[0]
	}

	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.Message
	}

	return ""
}

func asString(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}

	return s
}
