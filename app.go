package bustracker

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/bus-tracker/config"
	"github.com/theoremus-urban-solutions/bus-tracker/feed"
	"github.com/theoremus-urban-solutions/bus-tracker/routing"
	"github.com/theoremus-urban-solutions/bus-tracker/tracking"
	"github.com/theoremus-urban-solutions/bus-tracker/transit"
)

// LoadAppConfig loads and validates the global application configuration.
func LoadAppConfig() error {
	return config.LoadAppConfig()
}

// App wires the loaded network, planner, estimator and feed clients
// together. The network is parsed once here and shared read-only by every
// request.
type App struct {
	Net       *transit.Network
	Planner   *routing.Planner
	Estimator *tracking.Estimator
	Traffic   *feed.TrafficClient
	Vehicles  feed.VehicleSource

	Lang           string // display language for stop names
	ReadIntervalMS int    // vehicle feed poll interval, bounds snapshot freshness
}

// NewApp builds the application from the global configuration.
func NewApp() (*App, error) {
	cfg := config.Config

	net, err := transit.NewNetworkFromConfig(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("load network: %w", err)
	}

	timeout := time.Duration(cfg.Feeds.TimeoutMS) * time.Millisecond
	return &App{
		Net: net,
		Planner: routing.NewPlanner(net, routing.PlannerOptions{
			TransferCandidateCap: cfg.Routing.TransferCandidateCap,
			TransferResultCap:    cfg.Routing.TransferResultCap,
			MaxTransfers:         cfg.Routing.MaxTransfers,
			FallbackThreshold:    cfg.Routing.FallbackThreshold,
		}),
		Estimator:      tracking.NewEstimator(net),
		Traffic:        feed.NewTrafficClient(cfg.Feeds.TrafficURL, timeout),
		Vehicles:       newVehicleSource(cfg.Feeds, net, timeout),
		Lang:           cfg.Network.DefaultLanguage,
		ReadIntervalMS: cfg.Feeds.ReadIntervalMS,
	}, nil
}

// newVehicleSource picks the vehicle feed client: a configured GTFS-RT
// VehiclePositions feed wins over the probing operator-API client.
func newVehicleSource(feeds config.FeedsConfig, net *transit.Network, timeout time.Duration) feed.VehicleSource {
	if feeds.VehiclePositionsURL != "" {
		return feed.NewGTFSRTVehicleClient(feeds.VehiclePositionsURL, net, timeout)
	}
	return feed.NewVehicleClient(feeds.VehiclesURL, feeds.RouteTypeProbes, timeout)
}
