package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/mealcatalog/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     REST bind address (e.g., ":8080")
//	-g string     gRPC health bind address (e.g., ":50051")
//	-s string     seed YAML file
//	-l string     log level (debug, info, warn, error)
//	-b string     log backend (slog, zap)
//	-t duration   shutdown timeout (e.g., "5s")
//	-r float      requests per second per client, 0 disables limiting
//	-u int        rate limiter burst
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-l", "-b", "-t", "-r", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to serve the REST API")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to serve gRPC health")
	fs.StringVar(&config.SeedFile, "s", config.SeedFile, "seed file (YAML)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogBackend, "b", config.LogBackend, "log backend")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")
	fs.Float64Var(&config.RateLimit, "r", config.RateLimit, "rate limit (requests per second per client)")
	fs.IntVar(&config.RateBurst, "u", config.RateBurst, "rate limit burst")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
