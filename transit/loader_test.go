package transit

import (
	"testing"
)

const testDataset = `{
  "stops": {
    "1287": {"names": {"en": "Central Station", "bg": "Централна гара"}, "lat": 42.7128, "lon": 23.3219, "routes": ["280:fwd"]},
    "0363": {"names": {"en": "University"}, "lat": 42.6934, "lon": 23.3340, "routes": []},
    "0500": {"names": {"en": "Depot"}, "routes": []}
  },
  "routes": {
    "280:fwd": {"name": "280", "direction": "fwd", "stops": ["1287", "0363", "0500", "0363"]},
    "280:ret": {"name": "280", "direction": "ret", "stops": ["0500", "0363", "1287"]},
    "X1:fwd": {"name": "X1", "direction": "fwd", "stops": ["1287"]}
  }
}`

func TestNetworkFromBytes(t *testing.T) {
	net, err := NewNetworkFromBytes([]byte(testDataset))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if net.StopCount() != 3 {
		t.Errorf("expected 3 stops, got %d", net.StopCount())
	}
	// X1:fwd has a single stop and is dropped.
	if net.RouteCount() != 2 {
		t.Errorf("expected 2 routes, got %d", net.RouteCount())
	}

	s, ok := net.Stop("1287")
	if !ok {
		t.Fatal("stop 1287 missing")
	}
	if !s.HasGeo || s.Lat != 42.7128 {
		t.Errorf("stop 1287 lost its coordinates: %+v", s)
	}
	if s.Name("bg") != "Централна гара" {
		t.Errorf("unexpected bg name: %s", s.Name("bg"))
	}
	if s.Name("de") == "" {
		t.Error("missing language should fall back to any available name")
	}

	if _, ok := net.Stop("9999"); ok {
		t.Error("unknown stop resolved")
	}
	if _, ok := net.Route("280:xxx"); ok {
		t.Error("unknown route resolved")
	}
}

func TestNetworkDuplicateStopOnRouteDropped(t *testing.T) {
	net, err := NewNetworkFromBytes([]byte(testDataset))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// 280:fwd listed 0363 twice; the second occurrence is dropped so
	// traversal stays strictly forward.
	stops := net.StopsOf("280:fwd")
	if len(stops) != 3 {
		t.Fatalf("expected 3 stops on 280:fwd after dedup, got %v", stops)
	}
	seen := map[string]int{}
	for _, id := range stops {
		seen[id]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("stop %s appears %d times on 280:fwd", id, n)
		}
	}
	if idx, ok := net.StopIndexOn("280:fwd", "0363"); !ok || idx != 1 {
		t.Errorf("0363 should keep its first position 1, got %d (%v)", idx, ok)
	}
}

func TestNetworkMissingGeodataTolerated(t *testing.T) {
	net, err := NewNetworkFromBytes([]byte(testDataset))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	s, ok := net.Stop("0500")
	if !ok {
		t.Fatal("geoless stop missing from index")
	}
	if s.HasGeo {
		t.Error("stop without coordinates reports HasGeo")
	}
}

func TestNetworkServingRoutesDerived(t *testing.T) {
	net, err := NewNetworkFromBytes([]byte(testDataset))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// 0363 declared no routes itself; membership is derived from the
	// route stop lists.
	routes := net.RoutesServing("0363")
	want := map[string]bool{"280:fwd": true, "280:ret": true}
	if len(routes) != len(want) {
		t.Fatalf("expected %d routes serving 0363, got %v", len(want), routes)
	}
	for _, rid := range routes {
		if !want[rid] {
			t.Errorf("unexpected route %s serving 0363", rid)
		}
	}
}

func TestSplitRouteID(t *testing.T) {
	tests := []struct {
		id        string
		name      string
		direction string
	}{
		{"280:fwd", "280", "fwd"},
		{"N:12:ret", "N:12", "ret"},
		{"plain", "plain", ""},
	}
	for _, tt := range tests {
		name, direction := SplitRouteID(tt.id)
		if name != tt.name || direction != tt.direction {
			t.Errorf("SplitRouteID(%q) = %q, %q; want %q, %q", tt.id, name, direction, tt.name, tt.direction)
		}
	}
	if got := RouteID("280", "fwd"); got != "280:fwd" {
		t.Errorf("RouteID = %q", got)
	}
}
