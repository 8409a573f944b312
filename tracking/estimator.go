package tracking

import (
	"sort"

	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/routing"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// Arrival is one approaching vehicle with its estimated time to the
// target stop.
type Arrival struct {
	Plate      string `json:"plate"`
	StopsAway  int    `json:"stopsAway"`
	ETAMinutes int    `json:"etaMinutes"`
	AtStop     bool   `json:"atStop"`  // standing at the target stop right now
	EnRoute    bool   `json:"enRoute"` // on the final approach segment
}

// Estimator computes per-stop arrival estimates from live vehicle
// snapshots. Safe for concurrent use.
type Estimator struct {
	net *transit.Network
}

// NewEstimator creates an estimator over the given network.
func NewEstimator(net *transit.Network) *Estimator {
	return &Estimator{net: net}
}

// EstimateArrivals returns every vehicle approaching the target stop on
// the given route direction, sorted by ascending ETA. segs, when present,
// applies live congestion to the estimates.
//
// A vehicle reported at the target stop counts only while it is still
// standing there; once departed it is no longer approaching. A vehicle
// that departed the stop immediately before the target is already on the
// final approach segment, so its ETA is zero regardless of raw distance.
func (e *Estimator) EstimateArrivals(targetStopID, routeID string, vehicles []feed.VehicleAtStop, segs []feed.Segment) []Arrival {
	target, ok := e.net.StopIndexOn(routeID, targetStopID)
	if !ok {
		return nil
	}
	stops := e.net.StopsOf(routeID)

	var out []Arrival
	for _, v := range vehicles {
		i := v.StopIndex
		if i < 0 || i > target {
			continue
		}
		switch {
		case i == target:
			if v.Status != feed.AtStop {
				continue
			}
			out = append(out, Arrival{Plate: v.Plate, AtStop: true})
		case i == target-1 && v.Status == feed.Departed:
			out = append(out, Arrival{Plate: v.Plate, EnRoute: true})
		default:
			out = append(out, Arrival{
				Plate:      v.Plate,
				StopsAway:  target - i,
				ETAMinutes: routing.LegDuration(e.net, stops, i, target, segs),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ETAMinutes < out[j].ETAMinutes
	})
	return out
}

// Nearest returns up to n arrivals from the front of a sorted estimate
// list; the display layer shows two.
func Nearest(arrivals []Arrival, n int) []Arrival {
	if len(arrivals) <= n {
		return arrivals
	}
	return arrivals[:n]
}

// AnyAtStop reports whether any vehicle is currently standing at the
// target stop.
func AnyAtStop(arrivals []Arrival) bool {
	for _, a := range arrivals {
		if a.AtStop {
			return true
		}
	}
	return false
}
