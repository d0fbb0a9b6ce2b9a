package e2etest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a JSON API client for end-to-end tests.
type Client struct {
	client *http.Client
	url    string
}

// NewClient creates a client for the API server at url.
func NewClient(url string) (*Client, error) {
	return &Client{
		client: &http.Client{},
		url:    url,
	}, nil
}

// WaitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func (c *Client) WaitForReady(ctx context.Context, urlPath string) error {
	timeout := 1 * time.Second
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			c.url+urlPath,
			nil,
		); err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		if resp, err = c.client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return fmt.Errorf("close response body: %w", err)
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return fmt.Errorf("close response body: %w", err)
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(100 * time.Millisecond) //nolint:mnd // 100ms
		}
	}
}

// Get fetches a URL and returns the response.
func (c *Client) Get(ctx context.Context, urlPath string) (*http.Response, error) {
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	if req, err = c.newRequestWithContext(ctx, http.MethodGet, urlPath, nil); err != nil {
		return nil, fmt.Errorf("create request with context: %w", err)
	}
	if resp, err = c.client.Do(req); err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// GetJSON fetches a URL and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, urlPath string, out any) error {
	resp, err := c.Get(ctx, urlPath)
	if err != nil {
		return fmt.Errorf("client get: %w", err)
	}
	return decodeResponse(resp, out)
}

// PostJSON sends a JSON body to a URL and decodes the JSON response into out.
// Both body and out may be nil.
func (c *Client) PostJSON(ctx context.Context, urlPath string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, urlPath, body, out)
}

// PutJSON sends a JSON body to a URL with PUT and decodes the JSON response
// into out. Both body and out may be nil.
func (c *Client) PutJSON(ctx context.Context, urlPath string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, urlPath, body, out)
}

func (c *Client) sendJSON(ctx context.Context, method, urlPath string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}
	req, err := c.newRequestWithContext(ctx, method, urlPath, payload)
	if err != nil {
		return fmt.Errorf("create request with context: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	var resp *http.Response
	if resp, err = c.client.Do(req); err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	return decodeResponse(resp, out)
}

// newRequestWithContext creates a new HTTP request to the server that respects the given context.
func (c *Client) newRequestWithContext(
	ctx context.Context,
	method, urlPath string,
	body io.Reader,
) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if req, err = http.NewRequest(method, c.url+urlPath, body); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req.WithContext(ctx), nil
}

func decodeResponse(resp *http.Response, out any) error {
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024)) //nolint:mnd // error context only
		return fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, payload)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
