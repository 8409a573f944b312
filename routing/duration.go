package routing

import (
	"math"

	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

// LegDuration estimates the riding time in minutes along stops[fromIdx]
// through stops[toIdx] on one route direction. segs, when present, holds
// the route's live traffic segments indexed by absolute position along the
// full route, so a leg starting mid-route lines up without re-slicing.
//
// The estimate is monotonically non-decreasing in toIdx-fromIdx for fixed
// traffic input, never negative, and zero only for an empty range. A
// non-empty range whose value rounds to zero is floored to one minute when
// the path is longer than a small epsilon, so the result never implies
// instantaneous travel.
func LegDuration(net *transit.Network, stops []string, fromIdx, toIdx int, segs []feed.Segment) int {
	if fromIdx < 0 {
		fromIdx = 0
	}
	if toIdx > len(stops)-1 {
		toIdx = len(stops) - 1
	}
	if fromIdx >= toIdx {
		return 0
	}

	minutes := 0.0
	pathKM := 0.0
	for i := fromIdx; i < toIdx; i++ {
		km := segmentKM(net, stops[i], stops[i+1])
		pathKM += km
		minutes += km * MinutesPerKM * trafficMultiplier(segs, i)
	}
	minutes += float64(toIdx-fromIdx) * DwellMinutesPerStop

	rounded := int(math.Round(minutes))
	if rounded <= 0 {
		if pathKM > zeroFloorEpsilonKM {
			return 1
		}
		return 0
	}
	return rounded
}

// trafficMultiplier maps an ordinal congestion level onto a free-flow time
// multiplier. Missing data for a segment means free flow.
func trafficMultiplier(segs []feed.Segment, i int) float64 {
	if i < 0 || i >= len(segs) {
		return 1.0
	}
	switch level := segs[i].Level; {
	case level >= 3:
		return 2.0
	case level == 2:
		return 1.5
	default:
		return 1.0
	}
}

// segmentKM returns the great-circle length of one inter-stop segment,
// substituting the fixed fallback length when either stop lacks geodata.
func segmentKM(net *transit.Network, fromStopID, toStopID string) float64 {
	a, okA := net.Stop(fromStopID)
	b, okB := net.Stop(toStopID)
	if !okA || !okB || !a.HasGeo || !b.HasGeo {
		return utils.FallbackSegmentMeters / 1000.0
	}
	return utils.DistanceKM(a.Lat, a.Lon, b.Lat, b.Lon)
}
