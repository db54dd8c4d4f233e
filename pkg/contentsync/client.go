// Package contentsync reads and writes site content over the REST API the
// way the site's pages do: reads never fail, they fall back to empty
// results, and writes re-fetch the affected collection.
package contentsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/topi314/tint"
)

// FallbackMessage is shown when a write fails without a usable message.
const FallbackMessage = "서버에 연결할 수 없습니다."

// Client is an API client rooted at BaseURL, e.g. http://localhost:5000/api.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	token   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, which has no timeout;
// callers bound requests through the context or a client Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for read failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithToken sends an admin bearer token on writes.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient creates a Client.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MutationError is returned by Mutate when the write did not succeed.
type MutationError struct {
	Status  int
	Message string
}

func (e *MutationError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// FetchList GETs path and decodes a JSON array. Any failure is logged and
// yields an empty, non-nil slice. There is no retry.
func FetchList[T any](ctx context.Context, c *Client, path string) []T {
	var out []T
	if err := c.get(ctx, path, &out); err != nil {
		c.logger.WarnContext(ctx, "content fetch failed", slog.String("path", path), tint.Err(err))
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// FetchOne GETs path and decodes a single JSON object. Any failure, or a
// JSON null body, yields nil.
func FetchOne[T any](ctx context.Context, c *Client, path string) *T {
	var out *T
	if err := c.get(ctx, path, &out); err != nil {
		c.logger.WarnContext(ctx, "content fetch failed", slog.String("path", path), tint.Err(err))
		return nil
	}
	return out
}

// Mutate sends body to path with method. On success the collection at
// listPath is fetched again and returned. On failure the error is a
// *MutationError carrying the server's message or FallbackMessage.
func Mutate[T any](ctx context.Context, c *Client, method, path string, body any, listPath string) ([]T, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "content write failed", slog.String("method", method), slog.String("path", path), tint.Err(err))
		return nil, &MutationError{Message: FallbackMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &MutationError{Status: resp.StatusCode, Message: errorMessage(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return FetchList[T](ctx, c, listPath), nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage reads {"message": "..."} from a failed response.
func errorMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 1<<20)).Decode(&body); err != nil || body.Message == "" {
		return FallbackMessage
	}
	return body.Message
}
