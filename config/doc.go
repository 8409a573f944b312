// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The routing tuning constants (candidate caps, transfer bounds) are
// configuration rather than code; their defaults are empirical.
package config
