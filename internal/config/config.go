// Package config resolves matchbench settings from an optional YAML file and
// MATCHBENCH_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "MATCHBENCH_"

// Config holds the settings shared by all subcommands.
type Config struct {
	LogLevel     string `yaml:"log_level"`
	LogJSON      bool   `yaml:"log_json"`
	Language     string `yaml:"language"`
	Gap          int    `yaml:"gap"`
	GapAlphabet  string `yaml:"gap_alphabet"`
	Runs         int    `yaml:"runs"`
	Output       string `yaml:"output"`
	PowercapRoot string `yaml:"powercap_root"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "warn",
		Gap:         1,
		GapAlphabet: "ACGT",
		Runs:        10,
		Output:      "experiments_data.yml",
	}
}

// Load starts from Default, applies the YAML file at path if path is not
// empty, then the environment as seen through getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	env := func(name string) (string, bool) {
		v := getenv(EnvPrefix + name)
		return v, v != ""
	}
	if v, ok := env("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := env("JSON_LOG"); ok {
		switch strings.ToLower(v) {
		case "1", "true", "json":
			c.LogJSON = true
		default:
			c.LogJSON = false
		}
	}
	if v, ok := env("LANGUAGE"); ok {
		c.Language = v
	}
	if v, ok := env("GAP_ALPHABET"); ok {
		c.GapAlphabet = v
	}
	if v, ok := env("OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := env("POWERCAP_ROOT"); ok {
		c.PowercapRoot = v
	}
	for name, dst := range map[string]*int{"GAP": &c.Gap, "RUNS": &c.Runs} {
		v, ok := env(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		}
		*dst = n
	}
	return nil
}
