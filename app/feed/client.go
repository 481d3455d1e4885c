package feed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client fetches raw feed documents from the external blog host.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	timeout    time.Duration
}

func NewClient(url, userAgent string, timeout time.Duration) *Client {
	transport := &http.Transport{
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{Transport: transport},
		url:        url,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Fetch performs a single GET of the configured feed URL. Request headers
// instruct intermediate caches not to serve stale content. A slow upstream is
// cut off by the configured timeout; callers treat any error as "no posts".
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected HTTP status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
