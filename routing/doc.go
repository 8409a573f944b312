/*
Package routing implements the itinerary search and the traffic-aware
duration model over the static transit network.

# Searching

A Planner runs three strategies in order and pools their candidates:
direct routes, one-transfer combinations, and a bounded multi-transfer
breadth-first fallback that only kicks in when the first two strategies
produce too few candidates. Pooled candidates are ranked by estimated
duration, with transfer count deciding between results whose durations
are within a few minutes of each other.

	planner := routing.NewPlanner(net, routing.PlannerOptions{})
	results := planner.FindItineraries("1287", "0363")

A same-stop query and an unreachable pair both return an empty list;
"no itinerary" is a normal outcome, not an error.

# Durations

LegDuration prices a forward stop range on a route: great-circle segment
distances at a 40 km/h free-flow baseline, a congestion multiplier per
segment when live traffic is available, and a fixed dwell time per
intervening stop. The same arithmetic prices itineraries and live
arrival estimates, so the two stay comparable.

# Traffic enrichment

EnrichWithTraffic refreshes a result set against a live TrafficSource,
fetching each distinct route direction exactly once, concurrently, with
per-fetch failure isolation: a failed fetch only costs its own legs
their congestion multipliers.
*/
package routing
