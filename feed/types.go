package feed

import "context"

// Segment is one inter-stop stretch of a route direction with its live
// congestion level. Segments arrive ordered by physical position along
// the route: segment i covers the stretch from stop i to stop i+1.
type Segment struct {
	Level int          `json:"level"` // ordinal, higher = more congested
	Path  [][2]float64 `json:"path"`  // [lon,lat] points of the stretch
}

// VehicleStatus is the binary presence state of a reported vehicle.
type VehicleStatus int

const (
	// AtStop means the vehicle is currently standing at the stop.
	AtStop VehicleStatus = iota
	// Departed means the vehicle has just left the stop and is on the
	// segment towards the next one.
	Departed
)

// VehicleAtStop is one live vehicle report tied to a stop position on a
// route direction.
type VehicleAtStop struct {
	Plate     string        `json:"plate"`
	StopIndex int           `json:"stopIndex"`
	Status    VehicleStatus `json:"status"`
}

// VehicleSource provides the live vehicle snapshot for one route
// direction. Implemented by VehicleClient (operator API probing) and
// GTFSRTVehicleClient (standard VehiclePositions feed).
type VehicleSource interface {
	VehiclesOn(ctx context.Context, routeName, direction string) ([]VehicleAtStop, error)
}
