package api

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
	"strings"
	"time"

	"golang.org/x/time/rate"

	"thinkboard/internal/notes"
)

const maxErrorBody = 4 << 10

type Options struct {
	Timeout time.Duration
	// RatePerSecond caps outbound requests; 0 disables the limiter.
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
}

// Client talks to the notes REST resource rooted at a base URL.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

func New(baseURL string, opts Options) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api url %q: host is required", baseURL)
	}
	c := &Client{
		base:    baseURL,
		http:    opts.HTTPClient,
		timeout: opts.Timeout,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if opts.RatePerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}
	return c, nil
}

func (c *Client) List(ctx context.Context) ([]notes.Note, error) {
	var out []notes.Note
	if err := c.do(ctx, http.MethodGet, "/notes", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []notes.Note{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (notes.Note, error) {
	var out notes.Note
	if err := c.do(ctx, http.MethodGet, notePath(id), nil, &out); err != nil {
		return notes.Note{}, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, draft notes.Draft) (notes.Note, error) {
	var out notes.Note
	if err := c.do(ctx, http.MethodPost, "/notes", draft, &out); err != nil {
		return notes.Note{}, err
	}
	return out, nil
}

// Update replaces the whole note identified by note.ID.
func (c *Client) Update(ctx context.Context, note notes.Note) (notes.Note, error) {
	out := note
	if err := c.do(ctx, http.MethodPut, notePath(note.ID), note, &out); err != nil {
		return notes.Note{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, notePath(id), nil, nil)
}

func notePath(id string) string {
	return "/notes/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.limiter != nil && !c.limiter.Allow() {
		slog.Debug("notes api throttled", "method", method, "path", path)
		return &Error{Status: http.StatusTooManyRequests, Message: "client rate limit exceeded"}
	}

	reqCtx := ctx
	cancel := func() {}
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
	}
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: "encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.base+path, reader)
	if err != nil {
		return &Error{Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("notes api request failed", "method", method, "path", path, "duration_ms", time.Since(start).Milliseconds(), "err", err)
		return &Error{Message: transportMessage(err), Err: err}
	}
	defer resp.Body.Close()
	slog.Debug("notes api request", "method", method, "path", path, "status", resp.StatusCode, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Debug("notes api error response", "method", method, "path", path, "status", resp.StatusCode, "headers", resp.Header, "body", string(raw))
		return &Error{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Status: resp.StatusCode, Message: "read response", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	return nil
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "request canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return "request failed"
	}
}

func errorMessage(status int, raw []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(payload.Error); msg != "" {
			return msg
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "<") {
		return text
	}
	return http.StatusText(status)
}
