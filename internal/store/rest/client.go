// Package rest is the store adapter for a hosted PostgREST/GoTrue style API
// (the "/rest/v1" and "/auth/v1" endpoints of a Supabase project).
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/marceldopr/Volleyball-stats-definitiu/internal/store"
)

const (
	restPath = "/rest/v1/"
	authPath = "/auth/v1/"

	mediaObject = "application/vnd.pgrst.object+json"
)

// Client talks to the hosted store over HTTP. It is safe for concurrent use.
// It does not implement store.Transactor.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the project at baseURL using the public API key.
func New(baseURL, apiKey string, logger *zap.SugaredLogger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ store.Client        = (*Client)(nil)
	_ store.Authenticator = (*Client)(nil)
)

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	header http.Header
	// bearer overrides the token taken from the context.
	bearer string
}

// do sends req and returns the response body of a 2xx reply. Other replies
// are decoded into *store.Error with decodeErr.
func (c *Client) do(ctx context.Context, req request, decodeErr func(status int, body []byte) error) ([]byte, error) {
	endpoint := c.baseURL + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range req.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("apikey", c.apiKey)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	bearer := req.bearer
	if bearer == "" {
		if token, ok := store.AccessTokenFrom(ctx); ok {
			bearer = token
		} else {
			bearer = c.apiKey
		}
	}
	httpReq.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &store.Error{Code: store.CodeTransport, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &store.Error{Code: store.CodeTransport, Message: err.Error(), Status: resp.StatusCode}
	}

	c.logger.Debugw("store request", "method", req.method, "path", req.path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeErr(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// decodeRestError decodes a PostgREST error body.
func decodeRestError(status int, body []byte) error {
	e := &store.Error{Status: status}
	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		e.Message = fallbackMessage(status, body)
	}
	return e
}

func fallbackMessage(status int, body []byte) string {
	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
		return text
	}
	return fmt.Sprintf("store returned status %d", status)
}
