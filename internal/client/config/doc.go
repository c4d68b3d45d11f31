// Package config loads runtime configuration for the mealctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c/--config.
//  3. Persistent command flags (--server, --timeout, --no-color, --log-level),
//     which override earlier values only when set explicitly.
//
// # JSON schema
//
// Durations are either strings like "3s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "request_timeout": "5s",
//	  "no_color": false,
//	  "log_level": "error"
//	}
package config
