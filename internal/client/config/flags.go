package config

import (
	"time"

	"github.com/spf13/cobra"
)

// Flags holds the persistent flags shared by every mealctl command.
type Flags struct {
	ConfigFile     string
	ServerURL      string
	RequestTimeout time.Duration
	NoColor        bool
	LogLevel       string
}

// Register declares the flags on cmd as persistent flags.
func (f *Flags) Register(cmd *cobra.Command) {
	var d Config
	d.LoadDefaults()

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.ConfigFile, "config", "c", "", "JSON config file")
	pf.StringVarP(&f.ServerURL, "server", "s", d.ServerURL, "catalog API base URL")
	pf.DurationVarP(&f.RequestTimeout, "timeout", "t", d.RequestTimeout, "per-request timeout")
	pf.BoolVar(&f.NoColor, "no-color", d.NoColor, "disable styled output")
	pf.StringVar(&f.LogLevel, "log-level", d.LogLevel, "stderr log level")
}

// Load builds the effective Config for cmd: defaults, then the JSON file,
// then the flags the user actually set.
func (f *Flags) Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if f.ConfigFile != "" {
		if err := loadJSON(f.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("server") {
		cfg.ServerURL = f.ServerURL
	}
	if fs.Changed("timeout") {
		cfg.RequestTimeout = f.RequestTimeout
	}
	if fs.Changed("no-color") {
		cfg.NoColor = f.NoColor
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = f.LogLevel
	}
	return cfg, nil
}
