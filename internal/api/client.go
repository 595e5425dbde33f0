// Package api is the REST client for the Prashikshan backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserAgent = "prashikshan-cli/0.1"
	defaultTimeout   = 15 * time.Second
)

// TokenSource supplies bearer tokens for authorized requests and knows
// how to refresh them. Implemented by the auth session manager.
type TokenSource interface {
	// AccessToken returns the current access token, or "" when signed out.
	AccessToken() string
	// RefreshAccess exchanges the refresh token for a new pair and
	// returns the new access token.
	RefreshAccess(ctx context.Context) (string, error)
	// SignOut clears the session after an unrecoverable auth failure.
	SignOut() error
}

// Client talks to the Prashikshan HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base URL. A nil tokens source
// produces an unauthenticated client, which the auth flows themselves
// use; otherwise every request carries a bearer token and a 401 is
// retried once after a token refresh.
func NewClient(rawURL string, tokens TokenSource, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var transport http.RoundTripper = http.DefaultTransport
	if tokens != nil {
		transport = &authTransport{base: http.DefaultTransport, tokens: tokens}
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: defaultUserAgent,
	}, nil
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("api url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	base, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", rawURL, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("api url %q has no host", rawURL)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")
	return base, nil
}

// do performs one JSON request. body and out may each be nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}

	rel := &url.URL{Path: c.baseURL.Path + path}
	if query != nil {
		rel.RawQuery = query.Encode()
	}
	target := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", path, err)
	}
	return nil
}

// authTransport injects the bearer token and, when the server answers
// 401, refreshes the token pair once and replays the request. A failed
// refresh signs the session out and surfaces the refresh error.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	outReq := req.Clone(req.Context())
	if token := t.tokens.AccessToken(); token != "" {
		outReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(outReq)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	refreshed, refreshErr := t.tokens.RefreshAccess(req.Context())
	if refreshErr != nil {
		_ = t.tokens.SignOut()
		return resp, nil
	}
	_ = resp.Body.Close()

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+refreshed)
	return t.base.RoundTrip(retry)
}
