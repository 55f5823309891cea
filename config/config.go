// Package config loads settings for the label renderer from defaults, an
// optional TOML file, and NOJS_ environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override configuration.
// NOJS_UPDATE_POLICY sets update.policy.
const EnvPrefix = "NOJS_"

// Config holds every setting.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Update UpdateConfig `koanf:"update"`
	Mount  MountConfig  `koanf:"mount"`
}

// LogConfig controls logging.
type LogConfig struct {
	Verbosity int `koanf:"verbosity"`
}

// UpdateConfig controls the update dispatch loop.
type UpdateConfig struct {
	// Policy is "failfast" or "isolate".
	Policy string `koanf:"policy"`
}

// MountConfig describes where the label is drawn.
type MountConfig struct {
	Selector string `koanf:"selector"`
	Tag      string `koanf:"tag"`
	Class    string `koanf:"class"`
}

func defaults() map[string]any {
	return map[string]any{
		"log.verbosity":  0,
		"update.policy":  "failfast",
		"mount.selector": "#app",
		"mount.tag":      "div",
		"mount.class":    "v-label",
	}
}

// Default returns the built-in configuration without reading files or
// the environment.
func Default() *Config {
	k := koanf.New(".")
	// confmap over a literal map cannot fail.
	_ = k.Load(confmap.Provider(defaults(), "."), nil)
	var cfg Config
	_ = k.Unmarshal("", &cfg)
	return &cfg
}

// Load builds the configuration. path names a TOML file; an empty path
// skips the file layer, while a named file that does not exist is an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file if given
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Load env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &cfg, nil
}
