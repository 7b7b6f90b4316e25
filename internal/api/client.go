// Package api talks to the remote todo service over HTTP/JSON.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todosync/internal/todo"
)

// DefaultTimeout bounds every request so a dead backend cannot hang an
// operation (and with it the TUI loading flag) forever.
const DefaultTimeout = 10 * time.Second

const todosPath = "/api/todos"

// Patch is a partial update. Nil fields are omitted from the body.
type Patch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Client is a thin wrapper over the service's four todo endpoints.
// Any non-2xx status or transport failure is reported as a plain error;
// error response bodies carry no structure we care about.
type Client struct {
	base   string
	hc     *http.Client
	logger *log.Logger
}

// Option tunes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.hc.Timeout = d
		}
	}
}

// WithLogger routes request logging somewhere other than the default.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a client for the service at baseURL, e.g.
// "http://localhost:3000".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(baseURL, "/"),
		hc:     &http.Client{Timeout: DefaultTimeout},
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service address.
func (c *Client) BaseURL() string { return c.base }

// List fetches the full collection in server order.
func (c *Client) List(ctx context.Context) ([]todo.Item, error) {
	var items []todo.Item
	if err := c.do(ctx, http.MethodGet, todosPath, nil, &items); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	if items == nil {
		items = []todo.Item{}
	}
	return items, nil
}

// Create posts a new todo and returns the server-assigned item.
func (c *Client) Create(ctx context.Context, title string) (todo.Item, error) {
	body := map[string]string{"title": title}
	var created todo.Item
	if err := c.do(ctx, http.MethodPost, todosPath, body, &created); err != nil {
		return todo.Item{}, fmt.Errorf("create todo: %w", err)
	}
	return created, nil
}

// Update applies a partial change to one todo. Success bodies are ignored.
func (c *Client) Update(ctx context.Context, id string, patch Patch) error {
	if err := c.do(ctx, http.MethodPatch, todosPath+"/"+id, patch, nil); err != nil {
		return fmt.Errorf("update todo %s: %w", id, err)
	}
	return nil
}

// Delete removes one todo.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, todosPath+"/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return nil
}

// Ping checks that the service answers at all. Used by `todosync status`.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, todosPath, nil, nil); err != nil {
		return fmt.Errorf("ping %s: %w", c.base, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var rd io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	c.logger.Debug("api call", "method", method, "path", path,
		"status", resp.StatusCode, "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused; the body itself is
		// not parsed for detail.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
