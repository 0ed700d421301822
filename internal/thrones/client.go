package thrones

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://thronesapi.com"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "thronesquiz"

	charactersPath = "/api/v2/Characters"

	// maxErrorBody caps how much of a failed response ends up in ErrStatus.
	maxErrorBody = 512
)

// Client talks to the Thrones API over HTTP.
type Client struct {
	baseURL   string
	client    *http.Client
	timeout   time.Duration
	userAgent string
	onSaved   func(status int, body []byte)
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds every request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithSaveObserver registers a callback receiving the raw save response.
func WithSaveObserver(fn func(status int, body []byte)) Option {
	return func(c *Client) { c.onSaved = fn }
}

// NewClient creates a Client with defaults applied before opts.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		client:    &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListCharacters(ctx context.Context) ([]Character, error) {
	const op = "list characters"

	_, raw, err := c.do(ctx, op, http.MethodGet, c.baseURL+charactersPath, nil)
	if err != nil {
		return nil, err
	}

	var chars []Character
	if err := decodeValidated(op, raw, true, &chars); err != nil {
		return nil, err
	}
	return chars, nil
}

func (c *Client) GetCharacter(ctx context.Context, id int) (*Character, error) {
	const op = "get character"

	_, raw, err := c.do(ctx, op, http.MethodGet, c.baseURL+charactersPath+"/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var char Character
	if err := decodeValidated(op, raw, false, &char); err != nil {
		return nil, err
	}
	return &char, nil
}

func (c *Client) SaveCharacter(ctx context.Context, update CharacterUpdate) error {
	const op = "save character"

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	status, raw, err := c.do(ctx, op, http.MethodPost, c.baseURL+charactersPath, body)
	if err != nil {
		return err
	}
	if c.onSaved != nil {
		c.onSaved(status, raw)
	}
	return nil
}

// do performs one request and returns the status and body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, url string, body []byte) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "*/*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// The caller gave up; that is not the API's fault.
		if errors.Is(err, context.Canceled) {
			return 0, nil, err
		}
		return 0, nil, &ErrUnavailable{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &ErrUnavailable{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := strings.TrimSpace(string(raw))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return resp.StatusCode, nil, &ErrStatus{Op: op, Code: resp.StatusCode, Body: snippet}
	}

	return resp.StatusCode, raw, nil
}
