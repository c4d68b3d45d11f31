package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the catalog API (without the /api prefix).
//   - RequestTimeout: upper bound for every API call.
//   - NoColor: render plain text without styles.
//   - LogLevel: diagnostics written to stderr (debug, info, warn, error).
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
	NoColor        bool
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 5 * time.Second
	c.NoColor = false
	c.LogLevel = "error"
}
