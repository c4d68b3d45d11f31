package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/mealcatalog/internal/flagx"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// EnvConfig maps MEALS_* environment variables onto Config. Variables that
// are not set leave the field untouched; strict makes a value that does not
// parse an error instead of being skipped.
type EnvConfig struct {
	EndpointAddrHTTP string        `env:"MEALS_HTTP_ADDR,strict"`
	EndpointAddrGRPC string        `env:"MEALS_GRPC_ADDR,strict"`
	SeedFile         string        `env:"MEALS_SEED_FILE,strict"`
	LogLevel         string        `env:"MEALS_LOG_LEVEL,strict"`
	LogBackend       string        `env:"MEALS_LOG_BACKEND,strict"`
	ShutdownTimeout  time.Duration `env:"MEALS_SHUTDOWN_TIMEOUT,strict"`
	RateLimit        float64       `env:"MEALS_RATE_LIMIT,strict"`
	RateBurst        int           `env:"MEALS_RATE_BURST,strict"`
}

// parseEnv loads the dotenv file named by -env (or ./.env when present)
// and then decodes the MEALS_* variables. Variables already set in the
// process environment win over the dotenv file. Malformed values panic,
// like the other layers.
func parseEnv(config *Config) {
	loadDotEnv(flagx.EnvFileFlags())

	e := EnvConfig{
		EndpointAddrHTTP: config.EndpointAddrHTTP,
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		SeedFile:         config.SeedFile,
		LogLevel:         config.LogLevel,
		LogBackend:       config.LogBackend,
		ShutdownTimeout:  config.ShutdownTimeout,
		RateLimit:        config.RateLimit,
		RateBurst:        config.RateBurst,
	}

	if err := envdecode.Decode(&e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return
		}
		panic(err)
	}

	config.EndpointAddrHTTP = e.EndpointAddrHTTP
	config.EndpointAddrGRPC = e.EndpointAddrGRPC
	config.SeedFile = e.SeedFile
	config.LogLevel = e.LogLevel
	config.LogBackend = e.LogBackend
	config.ShutdownTimeout = e.ShutdownTimeout
	config.RateLimit = e.RateLimit
	config.RateBurst = e.RateBurst
}

// loadDotEnv reads path, or .env when path is empty. A missing default
// file is not an error; a missing explicit one is.
func loadDotEnv(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
