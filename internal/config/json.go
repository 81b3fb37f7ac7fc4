package config

import (
	"encoding/json"
	"os"
	"time"

	"jobdesk/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given as integer seconds so the file stays editable by hand.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	StateDBPath           string `json:"state_db_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c or -config flags; when neither is given, nothing is
// loaded. Zero-valued fields in the file leave cfg untouched, so a partial
// file only overrides what it names. Read or unmarshal errors panic, matching
// the fail-fast behavior of the rest of the config chain.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StateDBPath != "" {
		cfg.StateDBPath = jc.StateDBPath
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
}
