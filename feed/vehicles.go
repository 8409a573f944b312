package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// VehicleClient fetches live per-stop vehicle presence from the operator
// endpoint. The endpoint keys vehicles by an opaque route-type value that
// differs per line and is not published anywhere, so every configured
// value is probed and the largest response wins.
type VehicleClient struct {
	httpClient *http.Client
	baseURL    string
	probes     []int
}

// NewVehicleClient creates a vehicle feed client probing the given
// route-type values. An empty probe list defaults to types 1 and 2.
func NewVehicleClient(baseURL string, probes []int, timeout time.Duration) *VehicleClient {
	if len(probes) == 0 {
		probes = []int{1, 2}
	}
	return &VehicleClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		probes:     probes,
	}
}

type vehiclesResponse struct {
	Vehicles []vehicleReport `json:"vehicles"`
}

type vehicleReport struct {
	StopIndex int    `json:"stop_index"`
	Plate     string `json:"plate"`
	Status    string `json:"status"` // "at_stop" | "departed"
}

// VehiclesOn fetches the vehicles currently reported on a route direction,
// one probe per configured route-type value, concurrently. A failed probe
// degrades only itself; the response with the most vehicles is kept.
// Returns an error only when every probe failed.
func (c *VehicleClient) VehiclesOn(ctx context.Context, routeName, direction string) ([]VehicleAtStop, error) {
	if c.baseURL == "" {
		return nil, nil
	}

	type probeResult struct {
		vehicles []VehicleAtStop
		err      error
	}

	results := make(chan probeResult, len(c.probes))
	var wg sync.WaitGroup
	for _, rt := range c.probes {
		wg.Add(1)
		go func(routeType int) {
			defer wg.Done()
			vs, err := c.probe(ctx, routeName, direction, routeType)
			results <- probeResult{vehicles: vs, err: err}
		}(rt)
	}
	wg.Wait()
	close(results)

	var best []VehicleAtStop
	var firstErr error
	failed := 0
	for r := range results {
		if r.err != nil {
			failed++
			if firstErr == nil {
				firstErr = r.err
			}
			log.Printf("vehicle probe failed for %s/%s: %v", routeName, direction, r.err)
			continue
		}
		if len(r.vehicles) > len(best) {
			best = r.vehicles
		}
	}
	if failed == len(c.probes) {
		return nil, firstErr
	}
	return best, nil
}

func (c *VehicleClient) probe(ctx context.Context, routeName, direction string, routeType int) ([]VehicleAtStop, error) {
	q := url.Values{}
	q.Set("route", routeName)
	q.Set("direction", direction)
	q.Set("type", strconv.Itoa(routeType))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicles type %d: %w", routeType, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from vehicle feed, type %d", resp.StatusCode, routeType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var vr vehiclesResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("decode vehicles type %d: %w", routeType, err)
	}

	out := make([]VehicleAtStop, 0, len(vr.Vehicles))
	for _, v := range vr.Vehicles {
		if v.StopIndex < 0 {
			continue
		}
		status := AtStop
		if v.Status == "departed" {
			status = Departed
		}
		out = append(out, VehicleAtStop{Plate: v.Plate, StopIndex: v.StopIndex, Status: status})
	}
	return out, nil
}
