package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want %q", cfg.APIURL, DefaultAPIURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want %d", cfg.Timeout, DefaultTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Sources["apiUrl"] != SourceDefault {
		t.Errorf("Sources[apiUrl] = %q, want default", cfg.Sources["apiUrl"])
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "apiUrl: https://api.example.com\ntimeout: 60\nverbose: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.APIURL != "https://api.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 60 {
		t.Errorf("Timeout = %d", cfg.Timeout)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("apiUrl: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestMerge_OverlaysAndRecordsSource(t *testing.T) {
	dst := NewDefault()
	src := &Config{APIURL: "https://api.example.com", Timeout: 10}
	merge(dst, src, SourceLocal)

	if dst.APIURL != "https://api.example.com" {
		t.Errorf("APIURL = %q", dst.APIURL)
	}
	if dst.Sources["apiUrl"] != SourceLocal {
		t.Errorf("Sources[apiUrl] = %q, want local", dst.Sources["apiUrl"])
	}
	if dst.Timeout != 10 {
		t.Errorf("Timeout = %d", dst.Timeout)
	}
	// LogLevel was zero in src, so the default survives.
	if dst.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", dst.LogLevel)
	}
	if dst.Sources["logLevel"] != SourceDefault {
		t.Errorf("Sources[logLevel] = %q, want default", dst.Sources["logLevel"])
	}
}

func TestMerge_ZeroValuesDoNotOverwrite(t *testing.T) {
	dst := NewDefault()
	merge(dst, &Config{}, SourceLocal)

	if dst.APIURL != DefaultAPIURL {
		t.Errorf("APIURL = %q, want default", dst.APIURL)
	}
	if dst.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want default", dst.Timeout)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAPIURL, "https://env.example.com")
	t.Setenv(EnvTimeout, "45")
	t.Setenv(EnvVerbose, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg := NewDefault()
	applyEnv(cfg)

	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Timeout != 45 {
		t.Errorf("Timeout = %d", cfg.Timeout)
	}
	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	for _, key := range []string{"apiUrl", "timeout", "verbose", "logLevel"} {
		if cfg.Sources[key] != SourceEnv {
			t.Errorf("Sources[%s] = %q, want env", key, cfg.Sources[key])
		}
	}
}

func TestApplyEnv_BadTimeoutIgnored(t *testing.T) {
	t.Setenv(EnvTimeout, "not-a-number")

	cfg := NewDefault()
	applyEnv(cfg)

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %d, want default", cfg.Timeout)
	}
	if cfg.Sources["timeout"] != SourceDefault {
		t.Errorf("Sources[timeout] = %q, want default", cfg.Sources["timeout"])
	}
}

func TestFindLocalConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path, err := FindLocalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}

	rc := filepath.Join(dir, ".foliorc.yaml")
	if err := os.WriteFile(rc, []byte("verbose: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, err = FindLocalConfig()
	if err != nil {
		t.Fatal(err)
	}
	if path != rc {
		t.Errorf("path = %q, want %q", path, rc)
	}
}
