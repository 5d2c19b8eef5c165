package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// EnvConfig points at an explicit config file. When set, the file must
	// exist; otherwise ./sift.toml is used and may be absent.
	EnvConfig = "SIFT_CONFIG"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "SIFT_LOG_LEVEL"
	// EnvLogNoColor disables color in log output when truthy.
	EnvLogNoColor = "SIFT_LOG_NOCOLOR"
)

const defaultConfigPath = "sift.toml"

type config struct {
	Log    logConfig    `toml:"log"`
	Output outputConfig `toml:"output"`

	source string // file the config came from; empty when built-in defaults
}

type logConfig struct {
	Level   string `toml:"level"`
	NoColor bool   `toml:"no_color"`
}

type outputConfig struct {
	Factorization bool `toml:"factorization"` // always print the full decomposition
	Stats         bool `toml:"stats"`         // always print work counters
}

func defaultConfig() config {
	return config{
		Log: logConfig{Level: "info"},
	}
}

// loadConfig reads the TOML config file. Resolution order: the explicit
// path (from --config), then SIFT_CONFIG, then ./sift.toml. A missing
// fallback file yields the defaults; a missing explicit or env-named file
// is an error. Environment overrides are applied last.
func loadConfig(explicitPath string) (config, error) {
	path := strings.TrimSpace(explicitPath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfig))
	}
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.source = path

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *config) {
	if lvl := strings.TrimSpace(os.Getenv(EnvLogLevel)); lvl != "" {
		cfg.Log.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		cfg.Log.NoColor = v
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
