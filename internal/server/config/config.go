// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - EndpointAddrGRPC: bind address for the gRPC health endpoint.
//   - SeedFile: YAML document with the initial catalog; empty means the embedded sample data.
//   - LogLevel / LogBackend: see logging.New.
//   - ShutdownTimeout: how long in-flight requests may take once shutdown starts.
//   - RateLimit / RateBurst: per-client token bucket; RateLimit <= 0 disables it.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	SeedFile         string
	LogLevel         string
	LogBackend       string
	ShutdownTimeout  time.Duration
	RateLimit        float64
	RateBurst        int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.SeedFile = ""
	c.LogLevel = "info"
	c.LogBackend = "slog"
	c.ShutdownTimeout = 5 * time.Second
	c.RateLimit = 20
	c.RateBurst = 40
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
