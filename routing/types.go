package routing

// Tuning and model constants. The minutes-per-km baseline corresponds to
// roughly 40 km/h of free-flow urban bus travel.
const (
	MinutesPerKM           = 1.5
	DwellMinutesPerStop    = 0.5
	InitialWaitMinutes     = 3
	TransferPenaltyMinutes = 5

	// Below this path length a rounded-to-zero duration stays zero.
	zeroFloorEpsilonKM = 0.1

	// Duration gap beyond which ranking ignores transfer counts.
	durationTieWindowMinutes = 5
)

// RouteLeg is one uninterrupted ride on a single route direction between
// a boarding stop and an alighting stop. BoardIndex < AlightIndex always;
// travel is by increasing stop index.
type RouteLeg struct {
	RouteID     string `json:"routeId"`
	RouteName   string `json:"routeName"`
	Direction   string `json:"direction"`
	BoardStop   string `json:"boardStop"`
	AlightStop  string `json:"alightStop"`
	BoardIndex  int    `json:"boardIndex"`
	AlightIndex int    `json:"alightIndex"`
	DurationMin int    `json:"durationMinutes"`
}

// RideCount returns the number of stops ridden past after boarding.
func (l RouteLeg) RideCount() int { return l.AlightIndex - l.BoardIndex }

// RouteResult is one complete itinerary: sequential legs plus implied
// transfers between them.
type RouteResult struct {
	Legs        []RouteLeg `json:"legs"`
	StopCount   int        `json:"stopCount"`
	Transfers   int        `json:"transfers"`
	DurationMin int        `json:"durationMinutes"`
}

// PlannerOptions are the empirical search tuning constants. Zero values
// fall back to the defaults the network was tuned with.
type PlannerOptions struct {
	// TransferCandidateCap bounds how many one-transfer combinations are
	// emitted before the strategy gives up; quadratic blowup guard.
	TransferCandidateCap int
	// TransferResultCap is how many one-transfer candidates, best by stop
	// count, survive into the ranking pool.
	TransferResultCap int
	// MaxTransfers bounds the breadth-first fallback's path depth.
	MaxTransfers int
	// FallbackThreshold is the pool size below which the breadth-first
	// fallback runs at all.
	FallbackThreshold int
}

func (o PlannerOptions) withDefaults() PlannerOptions {
	if o.TransferCandidateCap == 0 {
		o.TransferCandidateCap = 50
	}
	if o.TransferResultCap == 0 {
		o.TransferResultCap = 5
	}
	if o.MaxTransfers == 0 {
		o.MaxTransfers = 3
	}
	if o.FallbackThreshold == 0 {
		o.FallbackThreshold = 3
	}
	return o
}
