package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps HTTP operations with ytfeed-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - Redirect-aware fetching for the video-info endpoint
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch feed XML
//	body, err := client.GetString(ctx, "https://www.youtube.com/feeds/videos.xml?channel_id=UC...")
//
//	// Fetch without following redirects
//	resp, err := client.GetNoFollow(ctx, videoInfoURL)
//	if resp.Location != "" {
//	    // caller decides whether to follow
//	}
type Client struct {
	httpClient *http.Client
	noRedirect *http.Client
	userAgent  string
}

// Response is the result of a GetNoFollow request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Location is the redirect target from the Location header, or empty
	// when the response was not a redirect.
	Location string

	// Body is the response body. Empty for redirect responses.
	Body []byte
}

// NewClient creates a new HTTP client configured for ytfeed.
//
// The client is configured with a 60 second timeout and a "ytfeed"
// User-Agent header.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		noRedirect: &http.Client{
			Timeout: 60 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: "ytfeed",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header. Returns an error
// if the request fails, the response status is not 200 OK, or reading the
// body fails.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content like
// feed XML or HTML pages.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetNoFollow performs a GET request without following redirects.
//
// A redirect response yields a Response with Location set and an empty
// body; the caller decides whether to issue a follow-up request. Any
// non-redirect, non-200 status is an error.
func (c *Client) GetNoFollow(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.noRedirect.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if location := resp.Header.Get("Location"); location != "" && resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return &Response{StatusCode: resp.StatusCode, Location: location}, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// DownloadBytes downloads a resource and returns the bytes in memory.
//
// Use this for small files like cover art images.
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
