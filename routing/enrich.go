package routing

import (
	"context"
	"log"
	"sync"

	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// TrafficSource provides live congestion segments for one route direction.
// Implemented by feed.TrafficClient; tests stub it.
type TrafficSource interface {
	SegmentsFor(ctx context.Context, routeName, direction string) ([]feed.Segment, error)
}

// EnrichWithTraffic refreshes itinerary durations against live traffic.
// Each distinct route direction appearing across all legs is fetched
// exactly once, concurrently. A failed fetch is logged and leaves that
// route without segments, so its legs keep the traffic-free estimate;
// sibling fetches are unaffected. The refreshed results are re-ranked with
// the search comparator. The input is not mutated, and for a stable
// traffic snapshot the operation is idempotent.
func (p *Planner) EnrichWithTraffic(ctx context.Context, results []RouteResult, source TrafficSource) []RouteResult {
	if len(results) == 0 {
		return results
	}
	if source == nil {
		out := make([]RouteResult, len(results))
		copy(out, results)
		sortResults(out)
		return out
	}

	routeIDs := make([]string, 0, 4)
	seen := map[string]struct{}{}
	for _, r := range results {
		for _, l := range r.Legs {
			if _, dup := seen[l.RouteID]; dup {
				continue
			}
			seen[l.RouteID] = struct{}{}
			routeIDs = append(routeIDs, l.RouteID)
		}
	}

	segsByRoute := make(map[string][]feed.Segment, len(routeIDs))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, rid := range routeIDs {
		wg.Add(1)
		go func(routeID string) {
			defer wg.Done()
			name, direction := transit.SplitRouteID(routeID)
			if r, ok := p.net.Route(routeID); ok {
				name, direction = r.Name, r.Direction
			}
			segs, err := source.SegmentsFor(ctx, name, direction)
			if err != nil {
				log.Printf("traffic fetch failed for %s: %v", routeID, err)
				return
			}
			mu.Lock()
			segsByRoute[routeID] = segs
			mu.Unlock()
		}(rid)
	}
	wg.Wait()

	out := make([]RouteResult, len(results))
	for i, r := range results {
		out[i] = p.reprice(r, segsByRoute)
	}
	sortResults(out)
	return out
}
