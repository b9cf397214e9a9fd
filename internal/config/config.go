// Package config holds the configuration of the bracket command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko/tracing"
)

// EnvVar names the environment variable pointing to a configuration file.
const EnvVar = "BRACKET_CONFIG"

// Config holds the complete configuration of the bracket command.
type Config struct {
	Trace   TraceConfig   `toml:"trace"`
	Grammar GrammarConfig `toml:"grammar"`
}

// TraceConfig holds tracing settings
type TraceConfig struct {
	Level  string `toml:"level"`  // error, info or debug
	Syntax string `toml:"syntax"` // level for the grammar engine, defaults to Level
}

// GrammarConfig holds grammar settings
type GrammarConfig struct {
	File   string `toml:"file"`   // grammar file replacing the shipped grammar
	Verify bool   `toml:"verify"` // cross-check acceptance with a second recognizer
	Forest string `toml:"forest"` // GraphViz output file for the parse forest
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	cfg.applyDefaults()
	if cfg.Grammar.File != "" && !filepath.IsAbs(cfg.Grammar.File) {
		cfg.Grammar.File = filepath.Join(filepath.Dir(path), cfg.Grammar.File)
	}
	if err := checkLevel(cfg.Trace.Level); err != nil {
		return nil, err
	}
	if err := checkLevel(cfg.Trace.Syntax); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the BRACKET_CONFIG environment variable.
// If it is unset, a few default locations are tried. If no configuration
// file exists at all, the defaults are returned.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		defaultPaths := []string{
			"./bracket.toml",
			filepath.Join(os.Getenv("HOME"), ".config/bracket/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Trace.Level == "" {
		c.Trace.Level = "error"
	}
	if c.Trace.Syntax == "" {
		c.Trace.Syntax = c.Trace.Level
	}
}

// SetLevel sets the trace level of t from a level name.
func SetLevel(t tracing.Trace, name string) error {
	switch strings.ToLower(name) {
	case "error":
		t.SetTraceLevel(tracing.LevelError)
	case "info":
		t.SetTraceLevel(tracing.LevelInfo)
	case "debug":
		t.SetTraceLevel(tracing.LevelDebug)
	default:
		return fmt.Errorf("unknown trace level %q", name)
	}
	return nil
}

func checkLevel(name string) error {
	switch strings.ToLower(name) {
	case "error", "info", "debug":
		return nil
	}
	return fmt.Errorf("unknown trace level %q", name)
}
