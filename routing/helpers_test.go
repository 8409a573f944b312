package routing

import (
	"encoding/json"
	"testing"

	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// Degrees of longitude at the equator per 1/3 km, so three consecutive
// segments span exactly one kilometer of great-circle distance.
const thirdKMLonDeg = 333.3333 / 111194.9266

type stopDef struct {
	id       string
	lat, lon float64
	noGeo    bool
}

// buildNetwork assembles a dataset document from stop definitions and
// route stop sequences, then loads it. Route ids carry the usual
// name:direction form.
func buildNetwork(t *testing.T, stops []stopDef, routes map[string][]string) *transit.Network {
	t.Helper()

	type jsonStop struct {
		Names  map[string]string `json:"names"`
		Lat    *float64          `json:"lat,omitempty"`
		Lon    *float64          `json:"lon,omitempty"`
		Routes []string          `json:"routes"`
	}
	type jsonRoute struct {
		Name      string   `json:"name"`
		Direction string   `json:"direction"`
		Stops     []string `json:"stops"`
	}

	doc := map[string]any{}
	stopDocs := map[string]jsonStop{}
	for _, s := range stops {
		js := jsonStop{Names: map[string]string{"en": "Stop " + s.id}}
		if !s.noGeo {
			lat, lon := s.lat, s.lon
			js.Lat, js.Lon = &lat, &lon
		}
		stopDocs[s.id] = js
	}
	routeDocs := map[string]jsonRoute{}
	for rid, stopIDs := range routes {
		name, direction := transit.SplitRouteID(rid)
		routeDocs[rid] = jsonRoute{Name: name, Direction: direction, Stops: stopIDs}
	}
	doc["stops"] = stopDocs
	doc["routes"] = routeDocs

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	net, err := transit.NewNetworkFromBytes(data)
	if err != nil {
		t.Fatalf("load network: %v", err)
	}
	return net
}

// lineOfStops lays n stops west to east at the equator, one third of a
// kilometer apart.
func lineOfStops(ids ...string) []stopDef {
	stops := make([]stopDef, len(ids))
	for i, id := range ids {
		stops[i] = stopDef{id: id, lat: 0, lon: float64(i) * thirdKMLonDeg}
	}
	return stops
}
