// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   URL of the backend GraphQL endpoint
//	-d string   path of the local state database
//	-t int      request timeout (seconds)
//	-p int      catalog page size
//
// # JSON schema
//
// The JSON loader uses timex.Duration for durations, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "endpoint_url": "http://127.0.0.1:4000/graphql",
//	  "state_db_path": "storefront.db",
//	  "request_timeout": "15s",
//	  "otp_cooldown": "60s",
//	  "otp_resend_cap": 5,
//	  "page_size": 20
//	}
//
// Primary API
//
//   - type Config                     — runtime settings of the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
