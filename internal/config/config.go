// Package config loads runtime settings for the jobdesk CLI from defaults,
// an optional JSON file, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the jobdesk CLI.
//
// Fields:
//   - APIBaseURL: base URL of the job-board REST API, including any path
//     prefix (e.g. "http://localhost:5000/api").
//   - StateDBPath: path to the local state database holding the persisted
//     session token.
//   - RequestTimeout: per-request timeout for API calls.
type Config struct {
	APIBaseURL     string
	StateDBPath    string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults. The API default matches
// the development endpoint of the backend service.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.StateDBPath = "jobdesk.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
