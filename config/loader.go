package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	cfg, err := parseAppConfig(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

func parseAppConfig(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Network); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Feeds); err != nil {
		return cfg, err
	}
	if err := v.Struct(cfg.Routing); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16280
	}
	if cfg.Network.DefaultLanguage == "" {
		cfg.Network.DefaultLanguage = "en"
	}
	if len(cfg.Feeds.RouteTypeProbes) == 0 {
		cfg.Feeds.RouteTypeProbes = []int{1, 2}
	}
	if cfg.Feeds.TimeoutMS == 0 {
		cfg.Feeds.TimeoutMS = 10000
	}
	if cfg.Routing.TransferCandidateCap == 0 {
		cfg.Routing.TransferCandidateCap = 50
	}
	if cfg.Routing.TransferResultCap == 0 {
		cfg.Routing.TransferResultCap = 5
	}
	if cfg.Routing.MaxTransfers == 0 {
		cfg.Routing.MaxTransfers = 3
	}
	if cfg.Routing.FallbackThreshold == 0 {
		cfg.Routing.FallbackThreshold = 3
	}
}
