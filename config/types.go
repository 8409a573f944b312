package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// NetworkConfig describes where the static stop/route dataset comes from
type NetworkConfig struct {
	DatasetPath     string `yaml:"datasetPath" validate:"omitempty"`
	DatasetURL      string `yaml:"datasetURL" validate:"omitempty,url"`
	DefaultLanguage string `yaml:"defaultLanguage"`
}

// FeedsConfig contains the live traffic and vehicle feed endpoints
type FeedsConfig struct {
	TrafficURL          string `yaml:"trafficURL" validate:"omitempty,url"`
	VehiclesURL         string `yaml:"vehiclesURL" validate:"omitempty,url"`
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	RouteTypeProbes     []int  `yaml:"routeTypeProbes"`
	TimeoutMS           int    `yaml:"timeoutMS" validate:"gte=0"`
	ReadIntervalMS      int    `yaml:"readIntervalMS" validate:"gte=0"`
}

// RoutingConfig contains itinerary search tuning constants
type RoutingConfig struct {
	TransferCandidateCap int `yaml:"transferCandidateCap" validate:"gte=0"`
	TransferResultCap    int `yaml:"transferResultCap" validate:"gte=0"`
	MaxTransfers         int `yaml:"maxTransfers" validate:"gte=0"`
	FallbackThreshold    int `yaml:"fallbackThreshold" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Network NetworkConfig `yaml:"network"`
	Feeds   FeedsConfig   `yaml:"feeds"`
	Routing RoutingConfig `yaml:"routing"`
}
