package bustracker

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/bus-tracker/utils"
)

type healthResponse struct {
	Status             string `json:"status"`
	StopCount          int    `json:"stop_count"`
	RouteCount         int    `json:"route_count"`
	NetworkLoadedEpoch int64  `json:"network_loaded_epoch"`
	NetworkLoaded      string `json:"network_loaded"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:             "ok",
		StopCount:          a.Net.StopCount(),
		RouteCount:         a.Net.RouteCount(),
		NetworkLoadedEpoch: a.Net.LoadedAtEpoch(),
		NetworkLoaded:      utils.Iso8601FromUnixSeconds(a.Net.LoadedAtEpoch()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
