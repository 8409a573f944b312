package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// TrafficClient fetches live per-segment traffic levels for one route
// direction at a time.
type TrafficClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTrafficClient creates a traffic feed client. A zero timeout disables
// the client-side deadline; the caller's context still applies.
func NewTrafficClient(baseURL string, timeout time.Duration) *TrafficClient {
	return &TrafficClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type trafficResponse struct {
	Segments []Segment `json:"segments"`
}

// SegmentsFor fetches the ordered traffic segments of a route direction.
// Returns nil if the client has no base URL (allows running without a
// traffic feed). A non-OK status or malformed body is an error; callers
// treat it as "no traffic data" for that route.
func (c *TrafficClient) SegmentsFor(ctx context.Context, routeName, direction string) ([]Segment, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("route", routeName)
	q.Set("direction", direction)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch traffic for %s/%s: %w", routeName, direction, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from traffic feed for %s/%s", resp.StatusCode, routeName, direction)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var tr trafficResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, fmt.Errorf("decode traffic for %s/%s: %w", routeName, direction, err)
	}
	return tr.Segments, nil
}
