package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, e.g. http://127.0.0.1:8000/api/.
//   - StoragePath: SQLite file holding the cart and the admin session.
//   - RequestTimeout: per-request timeout for backend calls.
//   - OnlineCheckInterval: how often the client probes backend reachability.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL          string
	StoragePath         string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api/"
	c.StoragePath = "storefront.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
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
