package routing

import (
	"testing"
)

// The reference network from most tests below:
//
//	route 10:fwd  A - B - C - D
//	route 21:fwd          C - D - E
//
// A to E needs one transfer at C or D; A to D rides 10:fwd directly.
func transferNetwork(t *testing.T) *Planner {
	t.Helper()
	stops := lineOfStops("A", "B", "C", "D", "E")
	net := buildNetwork(t, stops, map[string][]string{
		"10:fwd": {"A", "B", "C", "D"},
		"21:fwd": {"C", "D", "E"},
	})
	return NewPlanner(net, PlannerOptions{})
}

func TestFindItinerariesDirect(t *testing.T) {
	p := transferNetwork(t)

	results := p.FindItineraries("A", "D")
	if len(results) == 0 {
		t.Fatal("expected at least one itinerary")
	}

	var direct *RouteResult
	for i := range results {
		if results[i].Transfers == 0 {
			direct = &results[i]
			break
		}
	}
	if direct == nil {
		t.Fatal("expected a direct itinerary for a pair on the same route")
	}
	if len(direct.Legs) != 1 || direct.Legs[0].RouteID != "10:fwd" {
		t.Fatalf("unexpected direct itinerary: %+v", direct)
	}
	if direct.Legs[0].BoardStop != "A" || direct.Legs[0].AlightStop != "D" {
		t.Errorf("direct leg should ride A to D, got %s to %s", direct.Legs[0].BoardStop, direct.Legs[0].AlightStop)
	}

	// The direct ride must beat any transfer alternative outright.
	for _, r := range results {
		if r.Transfers > 0 && r.DurationMin <= direct.DurationMin {
			t.Errorf("transfer itinerary (%d min) not slower than direct (%d min)", r.DurationMin, direct.DurationMin)
		}
	}
}

func TestFindItinerariesOneTransfer(t *testing.T) {
	p := transferNetwork(t)

	results := p.FindItineraries("A", "E")
	if len(results) == 0 {
		t.Fatal("expected itineraries from A to E")
	}

	found := false
	for _, r := range results {
		if len(r.Legs) != 2 || r.Transfers != 1 {
			continue
		}
		a, b := r.Legs[0], r.Legs[1]
		if a.RouteID == "10:fwd" && a.BoardStop == "A" && a.AlightStop == "C" &&
			b.RouteID == "21:fwd" && b.BoardStop == "C" && b.AlightStop == "E" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the 10:fwd(A->C) + 21:fwd(C->E) itinerary, got %+v", results)
	}
}

func TestFindItinerariesLegOrderInvariant(t *testing.T) {
	p := transferNetwork(t)
	for _, pair := range [][2]string{{"A", "D"}, {"A", "E"}, {"B", "E"}, {"C", "E"}} {
		for _, r := range p.FindItineraries(pair[0], pair[1]) {
			for _, l := range r.Legs {
				if l.BoardIndex >= l.AlightIndex {
					t.Errorf("%s->%s: leg boards at %d but alights at %d", pair[0], pair[1], l.BoardIndex, l.AlightIndex)
				}
			}
		}
	}
}

func TestFindItinerariesDegenerateQueries(t *testing.T) {
	p := transferNetwork(t)

	if got := p.FindItineraries("A", "A"); len(got) != 0 {
		t.Errorf("same-stop query should be empty, got %d results", len(got))
	}
	if got := p.FindItineraries("A", "nope"); len(got) != 0 {
		t.Errorf("unknown end stop should be empty, got %d results", len(got))
	}
	if got := p.FindItineraries("nope", "A"); len(got) != 0 {
		t.Errorf("unknown start stop should be empty, got %d results", len(got))
	}
	// E precedes A in no direction; nothing rides backwards.
	if got := p.FindItineraries("E", "A"); len(got) != 0 {
		t.Errorf("backwards query should be empty, got %d results", len(got))
	}
}

func TestFindItinerariesMultiTransferFallback(t *testing.T) {
	// Three disjoint hops force the breadth-first fallback: no route pair
	// covers A to D with a single transfer.
	stops := lineOfStops("A", "B", "C", "D")
	net := buildNetwork(t, stops, map[string][]string{
		"10:fwd": {"A", "B"},
		"21:fwd": {"B", "C"},
		"33:fwd": {"C", "D"},
	})
	p := NewPlanner(net, PlannerOptions{})

	results := p.FindItineraries("A", "D")
	if len(results) != 1 {
		t.Fatalf("expected exactly one fallback itinerary, got %d", len(results))
	}
	r := results[0]
	if r.Transfers != 2 || len(r.Legs) != 3 {
		t.Fatalf("expected a three-leg itinerary with two transfers, got %+v", r)
	}
	want := []string{"10:fwd", "21:fwd", "33:fwd"}
	for i, l := range r.Legs {
		if l.RouteID != want[i] {
			t.Errorf("leg %d rides %s, want %s", i, l.RouteID, want[i])
		}
	}
}

func TestFindItinerariesTransferBound(t *testing.T) {
	// Five hops exceed the three-transfer bound; the fallback must give up
	// rather than emit a four-transfer path.
	stops := lineOfStops("A", "B", "C", "D", "E", "F")
	net := buildNetwork(t, stops, map[string][]string{
		"1:fwd": {"A", "B"},
		"2:fwd": {"B", "C"},
		"3:fwd": {"C", "D"},
		"4:fwd": {"D", "E"},
		"5:fwd": {"E", "F"},
	})
	p := NewPlanner(net, PlannerOptions{})

	if got := p.FindItineraries("A", "F"); len(got) != 0 {
		t.Errorf("expected no itinerary past the transfer bound, got %+v", got)
	}
	// Four hops fit exactly (three transfers).
	if got := p.FindItineraries("A", "E"); len(got) != 1 || got[0].Transfers != 3 {
		t.Errorf("expected a three-transfer itinerary A->E, got %+v", got)
	}
}

func TestOneTransferCaps(t *testing.T) {
	// A dense hub: many parallel second-leg routes through the same
	// transfer stop. Tight caps must bound the emitted candidates.
	stops := lineOfStops("A", "B", "C")
	routes := map[string][]string{
		"10:fwd": {"A", "B"},
	}
	for _, rid := range []string{"20:fwd", "21:fwd", "22:fwd", "23:fwd", "24:fwd", "25:fwd"} {
		routes[rid] = []string{"B", "C"}
	}
	net := buildNetwork(t, stops, routes)

	p := NewPlanner(net, PlannerOptions{TransferCandidateCap: 4, TransferResultCap: 2, FallbackThreshold: 1})
	out := p.oneTransferRoutes("A", "C")
	if len(out) != 2 {
		t.Fatalf("expected result cap of 2, got %d candidates", len(out))
	}
	for _, r := range out {
		if r.Transfers != 1 {
			t.Errorf("one-transfer strategy emitted %d transfers", r.Transfers)
		}
	}
}

func TestRankingComparator(t *testing.T) {
	mk := func(duration, transfers int) RouteResult {
		return RouteResult{DurationMin: duration, Transfers: transfers}
	}

	tests := []struct {
		name string
		in   []RouteResult
		want []RouteResult
	}{
		{
			name: "clear duration gap wins regardless of transfers",
			in:   []RouteResult{mk(30, 0), mk(20, 2)},
			want: []RouteResult{mk(20, 2), mk(30, 0)},
		},
		{
			name: "near tie prefers fewer transfers",
			in:   []RouteResult{mk(20, 2), mk(24, 0)},
			want: []RouteResult{mk(24, 0), mk(20, 2)},
		},
		{
			name: "near tie with equal transfers falls back to duration",
			in:   []RouteResult{mk(24, 1), mk(21, 1)},
			want: []RouteResult{mk(21, 1), mk(24, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sortResults(tt.in)
			for i := range tt.want {
				if tt.in[i].DurationMin != tt.want[i].DurationMin || tt.in[i].Transfers != tt.want[i].Transfers {
					t.Errorf("position %d: got (%d min, %d transfers), want (%d min, %d transfers)",
						i, tt.in[i].DurationMin, tt.in[i].Transfers, tt.want[i].DurationMin, tt.want[i].Transfers)
				}
			}
		})
	}
}

func TestRankingComparatorStable(t *testing.T) {
	// Two results inside the tie window with equal transfers and equal
	// duration keep their relative order across repeated sorts.
	a := RouteResult{DurationMin: 20, Transfers: 1, StopCount: 5}
	b := RouteResult{DurationMin: 20, Transfers: 1, StopCount: 9}
	in := []RouteResult{a, b}
	for i := 0; i < 5; i++ {
		sortResults(in)
		if in[0].StopCount != 5 || in[1].StopCount != 9 {
			t.Fatalf("sort reordered equal candidates on run %d", i)
		}
	}
}

func TestMultiTransferGlobalVisitedPruning(t *testing.T) {
	// Two distinct paths reach hub C; the global visited set explores it
	// only once. That trades away redundant alternatives for bounded
	// runtime, so the fallback returns a single itinerary even here.
	stops := lineOfStops("A", "B1", "B2", "C", "D")
	net := buildNetwork(t, stops, map[string][]string{
		"1:fwd": {"A", "B1"},
		"2:fwd": {"A", "B2"},
		"3:fwd": {"B1", "C"},
		"4:fwd": {"B2", "C"},
		"5:fwd": {"C", "D"},
	})
	p := NewPlanner(net, PlannerOptions{})

	results := p.FindItineraries("A", "D")
	if len(results) != 1 {
		t.Fatalf("expected a single pruned fallback itinerary, got %d", len(results))
	}
	if results[0].Transfers != 2 {
		t.Errorf("expected two transfers via a hub path, got %+v", results[0])
	}
}
