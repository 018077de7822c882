// Package backend wraps the marketplace backend's HTTP API. The portal owns
// no durable state: authentication, profiles, subscriptions and payments all
// live behind these calls. Requests forward the browser's backend session
// cookies verbatim, and auth responses hand the backend's Set-Cookie headers
// back for relaying to the browser.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client issues requests against the marketplace backend. Calls are plain
// request/response with no automatic retries; a failure is surfaced to the
// caller immediately.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New creates a Client for the backend at baseURL. timeout zero means no
// timeout, which is the shipped default.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// do performs one backend call. cookies are forwarded as-is; a JSON body is
// sent when body is non-nil; a 2xx JSON response is decoded into out when out
// is non-nil. Non-2xx responses become *APIError carrying the backend's
// message field when one is present. The response is returned so callers can
// relay Set-Cookie headers.
func (c *Client) do(ctx context.Context, method, path string, cookies []*http.Cookie, body, out any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading backend %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(data, &payload) == nil {
			if payload.Message != "" {
				apiErr.Message = payload.Message
			} else {
				apiErr.Message = payload.Error
			}
		}
		c.logger.Debug("backend call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return resp, apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp, fmt.Errorf("decoding backend %s %s response: %w", method, path, err)
		}
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, path string, cookies []*http.Cookie, out any) (*http.Response, error) {
	return c.do(ctx, http.MethodGet, path, cookies, nil, out)
}

func (c *Client) post(ctx context.Context, path string, cookies []*http.Cookie, body, out any) (*http.Response, error) {
	return c.do(ctx, http.MethodPost, path, cookies, body, out)
}
