package transit

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
)

// Dataset document shapes. Coordinates are pointers because some stops
// genuinely lack geodata and 0,0 is a valid (if unlikely) coordinate.
type datasetStop struct {
	Names  map[string]string `json:"names"`
	Lat    *float64          `json:"lat"`
	Lon    *float64          `json:"lon"`
	Routes []string          `json:"routes"`
}

type datasetRoute struct {
	Name      string   `json:"name"`
	Direction string   `json:"direction"`
	Stops     []string `json:"stops"`
}

type dataset struct {
	Stops  map[string]datasetStop  `json:"stops"`
	Routes map[string]datasetRoute `json:"routes"`
}

// NewNetworkFromConfig creates and loads a network from configuration,
// from a local file when datasetPath is set, otherwise from datasetURL.
func NewNetworkFromConfig(cfg config.NetworkConfig) (*Network, error) {
	if cfg.DatasetPath != "" {
		data, err := os.ReadFile(cfg.DatasetPath)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", cfg.DatasetPath, err)
		}
		return NewNetworkFromBytes(data)
	}
	if cfg.DatasetURL != "" {
		data, err := fetchDataset(cfg.DatasetURL)
		if err != nil {
			return nil, err
		}
		return NewNetworkFromBytes(data)
	}
	return nil, fmt.Errorf("network config has neither datasetPath nor datasetURL")
}

func fetchDataset(url string) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// NewNetworkFromBytes builds a network index from a raw dataset document.
func NewNetworkFromBytes(data []byte) (*Network, error) {
	var doc dataset
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	n := newNetwork()

	stopIDs := make([]string, 0, len(doc.Stops))
	for id := range doc.Stops {
		stopIDs = append(stopIDs, id)
	}
	sort.Strings(stopIDs)
	for _, id := range stopIDs {
		ds := doc.Stops[id]
		s := Stop{ID: id, Names: ds.Names}
		if ds.Lat != nil && ds.Lon != nil {
			s.Lat = *ds.Lat
			s.Lon = *ds.Lon
			s.HasGeo = true
		}
		n.stopIdx[id] = len(n.stopArena)
		n.stopArena = append(n.stopArena, s)
	}

	routeIDs := make([]string, 0, len(doc.Routes))
	for id := range doc.Routes {
		routeIDs = append(routeIDs, id)
	}
	sort.Strings(routeIDs)

	serving := map[string]map[string]struct{}{}
	for _, id := range stopIDs {
		serving[id] = map[string]struct{}{}
		for _, rid := range doc.Stops[id].Routes {
			serving[id][rid] = struct{}{}
		}
	}

	for _, id := range routeIDs {
		dr := doc.Routes[id]
		r := Route{ID: id, Name: dr.Name, Direction: dr.Direction}
		pos := map[string]int{}
		for _, sid := range dr.Stops {
			if _, dup := pos[sid]; dup {
				// A stop may appear at most once per direction; keep the
				// first occurrence so forward traversal stays well-defined.
				log.Printf("dataset: route %s lists stop %s more than once, dropping duplicate", id, sid)
				continue
			}
			if _, known := n.stopIdx[sid]; !known {
				// Route references a stop the document never declares.
				// Index it without geodata rather than rejecting the route.
				n.stopIdx[sid] = len(n.stopArena)
				n.stopArena = append(n.stopArena, Stop{ID: sid})
				serving[sid] = map[string]struct{}{}
			}
			pos[sid] = len(r.Stops)
			r.Stops = append(r.Stops, sid)
			serving[sid][id] = struct{}{}
		}
		if len(r.Stops) < 2 {
			log.Printf("dataset: route %s has fewer than two stops, skipping", id)
			continue
		}
		n.routeIdx[id] = len(n.routeArena)
		n.routeArena = append(n.routeArena, r)
		n.stopPosOnRoute[id] = pos
	}

	for i := range n.stopArena {
		s := &n.stopArena[i]
		ids := make([]string, 0, len(serving[s.ID]))
		for rid := range serving[s.ID] {
			if _, ok := n.routeIdx[rid]; ok {
				ids = append(ids, rid)
			}
		}
		sort.Strings(ids)
		s.Routes = ids
	}

	n.loadedAt = time.Now().Unix()
	return n, nil
}
