package routing

import (
	"sort"

	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// Planner runs itinerary searches over a loaded network. Safe for
// concurrent use; it holds no mutable state between searches.
type Planner struct {
	net  *transit.Network
	opts PlannerOptions
}

// NewPlanner creates a planner over the given network. Zero option fields
// take their defaults.
func NewPlanner(net *transit.Network, opts PlannerOptions) *Planner {
	return &Planner{net: net, opts: opts.withDefaults()}
}

// FindItineraries returns ranked itineraries from startStopID to
// endStopID. Unknown stops, a same-stop query, and an unreachable pair
// all yield an empty list.
func (p *Planner) FindItineraries(startStopID, endStopID string) []RouteResult {
	if startStopID == endStopID {
		return nil
	}
	if _, ok := p.net.Stop(startStopID); !ok {
		return nil
	}
	if _, ok := p.net.Stop(endStopID); !ok {
		return nil
	}

	pool := p.directRoutes(startStopID, endStopID)
	pool = append(pool, p.oneTransferRoutes(startStopID, endStopID)...)
	if len(pool) < p.opts.FallbackThreshold {
		if r, ok := p.multiTransferRoute(startStopID, endStopID); ok {
			pool = append(pool, r)
		}
	}

	sortResults(pool)
	return pool
}

// directRoutes emits a one-leg itinerary for every route that serves both
// stops in travel order. No cap; every qualifying line is a candidate.
func (p *Planner) directRoutes(startID, endID string) []RouteResult {
	var out []RouteResult
	for _, rid := range p.net.RoutesServing(startID) {
		si, ok := p.net.StopIndexOn(rid, startID)
		if !ok {
			continue
		}
		ei, ok := p.net.StopIndexOn(rid, endID)
		if !ok || si >= ei {
			continue
		}
		out = append(out, p.newResult(p.newLeg(rid, si, ei)))
	}
	return out
}

// oneTransferRoutes walks forward from the start stop on each serving
// route, treats every subsequent stop as a transfer candidate, and checks
// every other route serving it for a forward path to the end stop. The
// combination space is quadratic in route and stop counts, so emission
// stops at TransferCandidateCap and only the TransferResultCap candidates
// with the fewest stops survive into the pool.
func (p *Planner) oneTransferRoutes(startID, endID string) []RouteResult {
	var out []RouteResult
	emitted := 0

scan:
	for _, ridA := range p.net.RoutesServing(startID) {
		si, ok := p.net.StopIndexOn(ridA, startID)
		if !ok {
			continue
		}
		stopsA := p.net.StopsOf(ridA)
		for j := si + 1; j < len(stopsA); j++ {
			transferStop := stopsA[j]
			for _, ridB := range p.net.RoutesServing(transferStop) {
				if ridB == ridA {
					continue
				}
				xi, ok := p.net.StopIndexOn(ridB, transferStop)
				if !ok {
					continue
				}
				ei, ok := p.net.StopIndexOn(ridB, endID)
				if !ok || xi >= ei {
					continue
				}
				out = append(out, p.newResult(p.newLeg(ridA, si, j), p.newLeg(ridB, xi, ei)))
				emitted++
				if emitted >= p.opts.TransferCandidateCap {
					break scan
				}
			}
		}
	}

	if len(out) > p.opts.TransferResultCap {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StopCount < out[j].StopCount
		})
		out = out[:p.opts.TransferResultCap]
	}
	return out
}

type bfsState struct {
	stopID    string
	legs      []bfsLeg
	lastRoute string
	pathStops map[string]struct{}
}

type bfsLeg struct {
	routeID   string
	boardIdx  int
	alightIdx int
}

// multiTransferRoute is the breadth-first fallback for pairs the direct
// and one-transfer strategies barely cover. It expands (stop, path) states
// level by level, never re-rides the route it just arrived on, and stops
// expanding a path past MaxTransfers. Revisiting a stop within one path is
// forbidden, and a global visited set additionally prunes any stop already
// reached by an earlier path. The global set deliberately trades some
// completeness (redundant paths through an already-reached stop are never
// explored) for bounded runtime on dense networks. Returns at most the
// first itinerary found, which BFS level order makes shortest by transfer
// count.
func (p *Planner) multiTransferRoute(startID, endID string) (RouteResult, bool) {
	visited := map[string]struct{}{startID: {}}
	queue := []bfsState{{
		stopID:    startID,
		pathStops: map[string]struct{}{startID: {}},
	}}

	for len(queue) > 0 {
		st := queue[0]
		queue = queue[1:]

		// Adding another leg to this path would exceed the transfer bound.
		if len(st.legs) > p.opts.MaxTransfers {
			continue
		}

		for _, rid := range p.net.RoutesServing(st.stopID) {
			if rid == st.lastRoute {
				continue
			}
			bi, ok := p.net.StopIndexOn(rid, st.stopID)
			if !ok {
				continue
			}
			stops := p.net.StopsOf(rid)
			for j := bi + 1; j < len(stops); j++ {
				next := stops[j]
				if _, seen := st.pathStops[next]; seen {
					continue
				}
				if next == endID {
					legs := make([]RouteLeg, 0, len(st.legs)+1)
					for _, l := range st.legs {
						legs = append(legs, p.newLeg(l.routeID, l.boardIdx, l.alightIdx))
					}
					legs = append(legs, p.newLeg(rid, bi, j))
					return p.newResult(legs...), true
				}
				if _, seen := visited[next]; seen {
					continue
				}
				visited[next] = struct{}{}

				newLegs := make([]bfsLeg, len(st.legs), len(st.legs)+1)
				copy(newLegs, st.legs)
				newLegs = append(newLegs, bfsLeg{routeID: rid, boardIdx: bi, alightIdx: j})
				newPath := make(map[string]struct{}, len(st.pathStops)+1)
				for s := range st.pathStops {
					newPath[s] = struct{}{}
				}
				newPath[next] = struct{}{}
				queue = append(queue, bfsState{
					stopID:    next,
					legs:      newLegs,
					lastRoute: rid,
					pathStops: newPath,
				})
			}
		}
	}
	return RouteResult{}, false
}

// newLeg builds a priced leg for a forward stop range on a route, without
// live traffic; enrichment refreshes it later.
func (p *Planner) newLeg(routeID string, boardIdx, alightIdx int) RouteLeg {
	stops := p.net.StopsOf(routeID)
	name, direction := transit.SplitRouteID(routeID)
	if r, ok := p.net.Route(routeID); ok {
		name, direction = r.Name, r.Direction
	}
	return RouteLeg{
		RouteID:     routeID,
		RouteName:   name,
		Direction:   direction,
		BoardStop:   stops[boardIdx],
		AlightStop:  stops[alightIdx],
		BoardIndex:  boardIdx,
		AlightIndex: alightIdx,
		DurationMin: LegDuration(p.net, stops, boardIdx, alightIdx, nil),
	}
}

// newResult derives the itinerary-level fields from its legs.
func (p *Planner) newResult(legs ...RouteLeg) RouteResult {
	r := RouteResult{Legs: legs, Transfers: len(legs) - 1}
	for _, l := range legs {
		r.StopCount += l.RideCount()
		r.DurationMin += l.DurationMin
	}
	r.StopCount++ // boarding stop of the first leg
	r.DurationMin += InitialWaitMinutes + r.Transfers*TransferPenaltyMinutes
	return r
}

// reprice rebuilds a result's legs with the given per-route traffic
// segments and recomputes the derived fields.
func (p *Planner) reprice(r RouteResult, segsByRoute map[string][]feed.Segment) RouteResult {
	legs := make([]RouteLeg, len(r.Legs))
	for i, l := range r.Legs {
		stops := p.net.StopsOf(l.RouteID)
		l.DurationMin = LegDuration(p.net, stops, l.BoardIndex, l.AlightIndex, segsByRoute[l.RouteID])
		legs[i] = l
	}
	out := p.newResult(legs...)
	return out
}

// sortResults ranks candidates in place: clearly faster itineraries win
// outright, near-ties prefer fewer transfers, duration breaks the rest.
func sortResults(results []RouteResult) {
	sort.SliceStable(results, func(i, j int) bool {
		di, dj := results[i].DurationMin, results[j].DurationMin
		diff := di - dj
		if diff < 0 {
			diff = -diff
		}
		if diff > durationTieWindowMinutes {
			return di < dj
		}
		if results[i].Transfers != results[j].Transfers {
			return results[i].Transfers < results[j].Transfers
		}
		return di < dj
	})
}
