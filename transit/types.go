package transit

import (
	"sort"
	"strings"
)

// Stop is one physical stop in the network. Immutable after load.
type Stop struct {
	ID     string
	Names  map[string]string // language code -> display name
	Lat    float64
	Lon    float64
	HasGeo bool
	Routes []string // ids of routes serving this stop, sorted
}

// Name returns the stop's display name in the given language. When the
// requested language is absent the first available one in language-code
// order is used, so the fallback is the same on every call.
func (s *Stop) Name(lang string) string {
	if n, ok := s.Names[lang]; ok {
		return n
	}
	if len(s.Names) == 0 {
		return s.ID
	}
	codes := make([]string, 0, len(s.Names))
	for code := range s.Names {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return s.Names[codes[0]]
}

// Route is one direction of a physical line: an ordered sequence of stops
// in physical travel order. A stop appears at most once per route.
type Route struct {
	ID        string
	Name      string   // human-readable line name
	Direction string   // direction tag, one of two per physical line
	Stops     []string // stop ids in travel order
}

// RouteID builds the canonical route identifier from a line name and a
// direction tag.
func RouteID(name, direction string) string {
	return name + ":" + direction
}

// SplitRouteID splits a canonical route identifier back into line name and
// direction tag. Line names may themselves contain ':'; the direction tag
// may not.
func SplitRouteID(id string) (name, direction string) {
	i := strings.LastIndex(id, ":")
	if i < 0 {
		return id, ""
	}
	return id[:i], id[i+1:]
}
