package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names understood by the CLI.
const (
	EnvAPIBaseURL  = "JOBDESK_API_URL"
	EnvStateDBPath = "JOBDESK_STATE_DB"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first when present; it never overrides
// variables already set in the process environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvStateDBPath); v != "" {
		cfg.StateDBPath = v
	}
}
