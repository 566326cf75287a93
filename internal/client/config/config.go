package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - EndpointURL: URL of the backend GraphQL endpoint.
//   - StateDBPath: path of the local sqlite state database.
//   - RequestTimeout: per-request timeout for API calls.
//   - OTPCooldown: wait enforced between verification-code resends.
//   - OTPResendCap: resend attempts allowed per verification flow.
//   - PageSize: products fetched per catalog page.
type Config struct {
	EndpointURL    string
	StateDBPath    string
	RequestTimeout time.Duration
	OTPCooldown    time.Duration
	OTPResendCap   int
	PageSize       int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = "http://127.0.0.1:4000/graphql"
	c.StateDBPath = "storefront.db"
	c.RequestTimeout = 15 * time.Second
	c.OTPCooldown = 60 * time.Second
	c.OTPResendCap = 5
	c.PageSize = 20
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
