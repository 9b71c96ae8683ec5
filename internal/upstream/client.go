// Package upstream provides a minimal client for the optional market
// insights API that enriches tool output with live data.
//
// Neither retries nor caching are performed: each tool invocation makes at
// most one upstream call, bounded by the configured timeout (15s default,
// see internal/config). The gateway stays fully functional without an
// upstream endpoint; tools fall back to their built-in analysis.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a minimal HTTP client for the market insights API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a new client. A non-positive timeout falls back to 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Snapshot is the normalized view of one insights response.
type Snapshot struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights,omitempty"`
}

// MarketSnapshot fetches a short market summary for the given topic and
// location. The response format is tolerant: a summary field is required,
// highlights are optional.
func (c *Client) MarketSnapshot(ctx context.Context, topic, location string) (*Snapshot, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid insights base url: %w", err)
	}
	q := u.Query()
	q.Set("topic", topic)
	if location != "" {
		q.Set("location", location)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("insights api status %d", resp.StatusCode)
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding insights response: %w", err)
	}
	if snap.Summary == "" {
		return nil, fmt.Errorf("insights response missing summary")
	}
	return &snap, nil
}
