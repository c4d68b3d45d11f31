package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mealcatalog/internal/flagx"
	"github.com/dmitrijs2005/mealcatalog/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// both "5s" strings and integer nanoseconds. Fields absent from the file
// keep their current value.
type JsonConfig struct {
	EndpointAddrHTTP *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	SeedFile         *string         `json:"seed_file"`
	LogLevel         *string         `json:"log_level"`
	LogBackend       *string         `json:"log_backend"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
	RateLimit        *float64        `json:"rate_limit"`
	RateBurst        *int            `json:"rate_burst"`
}

// parseJson overlays values from the file named by -c or -config. Without
// either flag nothing is loaded. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setIf(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.SeedFile, c.SeedFile)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogBackend, c.LogBackend)
	setIf(&config.RateLimit, c.RateLimit)
	setIf(&config.RateBurst, c.RateBurst)
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
