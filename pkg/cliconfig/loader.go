package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// globalConfigDir is the directory under the user config dir.
const globalConfigDir = "folio"

// LocalConfigFileNames are the names searched for a local config (in order).
var LocalConfigFileNames = []string{".foliorc.yaml", ".foliorc.yml"}

// GlobalConfigFileNames are the names searched for a global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches the current directory for a local config file.
// Returns "" when none exists.
func FindLocalConfig() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// FindGlobalConfig returns the path to the global config file, or "" when
// none exists.
func FindGlobalConfig() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, globalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// LoadFile reads one yaml config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// Load resolves the effective configuration: defaults, then the global file,
// then the local file, then environment variables. Flags are applied by the
// CLI layer on top of the result.
func Load() (*Config, error) {
	cfg := NewDefault()

	if path, err := FindGlobalConfig(); err == nil && path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merge(cfg, fileCfg, SourceGlobal)
	}
	if path, err := FindLocalConfig(); err == nil && path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merge(cfg, fileCfg, SourceLocal)
	}

	applyEnv(cfg)
	return cfg, nil
}

// merge overlays non-zero values from src onto dst, recording their source.
func merge(dst, src *Config, source string) {
	if src.APIURL != "" {
		dst.APIURL = src.APIURL
		dst.Sources["apiUrl"] = source
	}
	if src.Timeout != 0 {
		dst.Timeout = src.Timeout
		dst.Sources["timeout"] = source
	}
	if src.Verbose {
		dst.Verbose = true
		dst.Sources["verbose"] = source
	}
	if src.JSON {
		dst.JSON = true
		dst.Sources["json"] = source
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
		dst.Sources["logLevel"] = source
	}
}
