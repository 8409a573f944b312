package config

import (
	"testing"
)

func TestParseAppConfig(t *testing.T) {
	data := []byte(`
server:
  port: 9090
network:
  datasetPath: ./network.json
  defaultLanguage: bg
feeds:
  trafficURL: https://feeds.example.com/traffic
  vehiclesURL: https://feeds.example.com/vehicles
  routeTypeProbes: [1, 2, 3]
  timeoutMS: 5000
routing:
  transferCandidateCap: 80
  transferResultCap: 10
`)
	cfg, err := parseAppConfig(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Network.DefaultLanguage != "bg" {
		t.Errorf("defaultLanguage = %s", cfg.Network.DefaultLanguage)
	}
	if len(cfg.Feeds.RouteTypeProbes) != 3 {
		t.Errorf("routeTypeProbes = %v", cfg.Feeds.RouteTypeProbes)
	}
	if cfg.Routing.TransferCandidateCap != 80 || cfg.Routing.TransferResultCap != 10 {
		t.Errorf("routing caps not honored: %+v", cfg.Routing)
	}
	// Untouched fields still take defaults.
	if cfg.Routing.MaxTransfers != 3 || cfg.Routing.FallbackThreshold != 3 {
		t.Errorf("routing defaults missing: %+v", cfg.Routing)
	}
}

func TestParseAppConfigDefaults(t *testing.T) {
	cfg, err := parseAppConfig([]byte("server:\n  port: 1\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Network.DefaultLanguage != "en" {
		t.Errorf("defaultLanguage default = %s", cfg.Network.DefaultLanguage)
	}
	if cfg.Routing.TransferCandidateCap != 50 || cfg.Routing.TransferResultCap != 5 {
		t.Errorf("routing defaults = %+v", cfg.Routing)
	}
	if len(cfg.Feeds.RouteTypeProbes) != 2 {
		t.Errorf("probe defaults = %v", cfg.Feeds.RouteTypeProbes)
	}
	if cfg.Feeds.TimeoutMS != 10000 {
		t.Errorf("timeout default = %d", cfg.Feeds.TimeoutMS)
	}
}

func TestParseAppConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"negative port", "server:\n  port: -1\n"},
		{"bad dataset url", "server:\n  port: 1\nnetwork:\n  datasetURL: not-a-url\n"},
		{"bad feed url", "server:\n  port: 1\nfeeds:\n  trafficURL: not-a-url\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseAppConfig([]byte(tt.data)); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
