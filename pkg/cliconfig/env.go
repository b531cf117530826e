package cliconfig

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvAPIURL   = "FOLIO_API_URL"
	EnvTimeout  = "FOLIO_TIMEOUT"
	EnvVerbose  = "FOLIO_VERBOSE"
	EnvLogLevel = "FOLIO_LOG_LEVEL"
)

// applyEnv overlays environment variables onto cfg. Only values present in
// the environment are set.
func applyEnv(cfg *Config) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
		cfg.Sources["apiUrl"] = SourceEnv
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if timeout, err := strconv.Atoi(v); err == nil {
			cfg.Timeout = timeout
			cfg.Sources["timeout"] = SourceEnv
		}
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Verbose = v == "true" || v == "1" || v == "yes"
		cfg.Sources["verbose"] = SourceEnv
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
}
