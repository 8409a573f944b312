package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// GTFSRTVehicleClient serves vehicle snapshots from a standard GTFS-RT
// VehiclePositions feed. Operators that publish GTFS-RT use this in place
// of the probing VehicleClient; the feed carries every route at once, so
// each fetch is filtered down to the requested direction.
type GTFSRTVehicleClient struct {
	httpClient *http.Client
	feedURL    string
	net        *transit.Network
}

// NewGTFSRTVehicleClient creates a vehicle source reading the given
// VehiclePositions feed URL.
func NewGTFSRTVehicleClient(feedURL string, net *transit.Network, timeout time.Duration) *GTFSRTVehicleClient {
	return &GTFSRTVehicleClient{
		httpClient: &http.Client{Timeout: timeout},
		feedURL:    feedURL,
		net:        net,
	}
}

// VehiclesOn fetches the current VehiclePositions feed and returns the
// reports for one route direction. Returns nil if the client has no feed
// URL.
func (c *GTFSRTVehicleClient) VehiclesOn(ctx context.Context, routeName, direction string) ([]VehicleAtStop, error) {
	if c.feedURL == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle positions: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from vehicle positions feed", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return VehiclesFromGTFSRT(body, c.net, transit.RouteID(routeName, direction))
}

// VehiclesFromGTFSRT decodes a GTFS-RT VehiclePositions feed into per-stop
// vehicle reports for one route direction. The feed's route_id must match
// the route's line name and, when a direction_id is present, its decimal
// form must match the route's direction tag ("0"/"1" style datasets).
//
// STOPPED_AT maps to an at-stop report at the current stop. IN_TRANSIT_TO
// and INCOMING_AT map to a departed report at the previous stop, which is
// the model the arrival estimator works in.
func VehiclesFromGTFSRT(data []byte, net *transit.Network, routeID string) ([]VehicleAtStop, error) {
	route, ok := net.Route(routeID)
	if !ok {
		return nil, fmt.Errorf("unknown route %s", routeID)
	}

	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(data, &fm); err != nil {
		return nil, fmt.Errorf("decode vehicle positions: %w", err)
	}

	var out []VehicleAtStop
	for _, e := range fm.Entity {
		vp := e.Vehicle
		if vp == nil || vp.Trip == nil {
			continue
		}
		if vp.Trip.RouteId == nil || *vp.Trip.RouteId != route.Name {
			continue
		}
		if vp.Trip.DirectionId != nil &&
			strconv.Itoa(int(*vp.Trip.DirectionId)) != route.Direction {
			continue
		}
		if vp.StopId == nil {
			continue
		}
		idx, ok := net.StopIndexOn(routeID, *vp.StopId)
		if !ok {
			continue
		}

		plate := ""
		if vp.Vehicle != nil && vp.Vehicle.Id != nil {
			plate = *vp.Vehicle.Id
		}

		status := gtfsrtpb.VehiclePosition_IN_TRANSIT_TO
		if vp.CurrentStatus != nil {
			status = *vp.CurrentStatus
		}
		switch status {
		case gtfsrtpb.VehiclePosition_STOPPED_AT:
			out = append(out, VehicleAtStop{Plate: plate, StopIndex: idx, Status: AtStop})
		default:
			// In transit towards idx means it has departed the stop before.
			if idx == 0 {
				continue
			}
			out = append(out, VehicleAtStop{Plate: plate, StopIndex: idx - 1, Status: Departed})
		}
	}
	return out, nil
}
