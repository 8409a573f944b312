package transit

// Network stores the static stop/route graph in memory for fast lookups.
// Stops and routes live in arenas of structs; the maps translate string
// identifiers to arena indices so the search hot path hashes each id once.
type Network struct {
	stopIdx  map[string]int // stop_id -> index into stopArena
	routeIdx map[string]int // route_id -> index into routeArena

	stopArena  []Stop
	routeArena []Route

	stopPosOnRoute map[string]map[string]int // route_id -> stop_id -> index in Route.Stops

	loadedAt int64
}

func newNetwork() *Network {
	return &Network{
		stopIdx:        map[string]int{},
		routeIdx:       map[string]int{},
		stopPosOnRoute: map[string]map[string]int{},
	}
}

// Stop returns the stop with the given id.
func (n *Network) Stop(id string) (*Stop, bool) {
	i, ok := n.stopIdx[id]
	if !ok {
		return nil, false
	}
	return &n.stopArena[i], true
}

// Route returns the route with the given id.
func (n *Network) Route(id string) (*Route, bool) {
	i, ok := n.routeIdx[id]
	if !ok {
		return nil, false
	}
	return &n.routeArena[i], true
}

// RoutesServing returns the ids of all routes serving the given stop.
// The result is sorted and must not be mutated.
func (n *Network) RoutesServing(stopID string) []string {
	if s, ok := n.Stop(stopID); ok {
		return s.Routes
	}
	return nil
}

// StopsOf returns the ordered stop ids of the given route.
// The result must not be mutated.
func (n *Network) StopsOf(routeID string) []string {
	if r, ok := n.Route(routeID); ok {
		return r.Stops
	}
	return nil
}

// StopIndexOn returns the position of a stop along a route.
func (n *Network) StopIndexOn(routeID, stopID string) (int, bool) {
	m, ok := n.stopPosOnRoute[routeID]
	if !ok {
		return 0, false
	}
	i, ok := m[stopID]
	return i, ok
}

// StopCount returns the number of stops in the network.
func (n *Network) StopCount() int { return len(n.stopArena) }

// RouteCount returns the number of directional routes in the network.
func (n *Network) RouteCount() int { return len(n.routeArena) }

// LoadedAtEpoch returns the Unix time the dataset was loaded.
func (n *Network) LoadedAtEpoch() int64 { return n.loadedAt }
