// Package cliconfig provides configuration types and loading for the folio
// CLI.
package cliconfig

// Config is the complete configuration for the folio CLI. Values can come
// from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.foliorc.yaml in the current directory)
// 4. Global config file (~/.config/folio/config.yaml)
// 5. Default values (lowest priority)
type Config struct {
	// APIURL is the portfolio backend base URL (scheme and host, no path).
	APIURL string `yaml:"apiUrl" json:"apiUrl"`

	// Timeout is the HTTP timeout in seconds.
	Timeout int `yaml:"timeout" json:"timeout"`

	// Output settings
	Verbose bool `yaml:"verbose" json:"verbose"`
	JSON    bool `yaml:"json" json:"json"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel" json:"logLevel"`

	// Sources tracks where each value came from (for debugging).
	Sources map[string]string `yaml:"-" json:"-"`
}

// Source identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Defaults.
const (
	// DefaultAPIURL points at a locally running backend.
	DefaultAPIURL = "http://localhost:5000"

	// DefaultTimeout is the default HTTP timeout in seconds.
	DefaultTimeout = 30
)

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout,
		LogLevel: "info",
		Sources: map[string]string{
			"apiUrl":   SourceDefault,
			"timeout":  SourceDefault,
			"logLevel": SourceDefault,
		},
	}
}
