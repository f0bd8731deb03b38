// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/tb64/lib/tags"
)

// EnvironmentVariable names the config file when --config is not given.
const EnvironmentVariable = "TB64_CONFIG"

// Config is the tool configuration.
type Config struct {
	// Registry configures which tags are known.
	Registry RegistryConfig `yaml:"registry"`

	// Output configures text output.
	Output OutputConfig `yaml:"output"`

	// Log configures diagnostic logging on stderr.
	Log LogConfig `yaml:"log"`
}

// RegistryConfig configures the tag registry.
type RegistryConfig struct {
	// Strict rejects values whose tag is not registered, on both
	// encode and decode.
	// Default: false
	Strict bool `yaml:"strict"`

	// Builtin loads the built-in tag set before Tags and Files.
	// Default: true
	Builtin bool `yaml:"builtin"`

	// Tags are additional tag declarations.
	Tags []tags.Entry `yaml:"tags"`

	// Files are paths of additional tag files, each holding a list of
	// entries in the same YAML or JSONC format. ${VAR} and
	// ${VAR:-default} are expanded from the environment. Relative
	// paths are resolved against the directory of the config file.
	Files []string `yaml:"files"`
}

// OutputConfig configures text output.
type OutputConfig struct {
	// Newline terminates encoded output with a newline.
	// Default: true
	Newline bool `yaml:"newline"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level logged: debug, info, warn, or error.
	// Default: warn
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Registry: RegistryConfig{Builtin: true},
		Output:   OutputConfig{Newline: true},
		Log:      LogConfig{Level: "warn"},
	}
}

// Load loads the file named by TB64_CONFIG, or returns Default when
// the variable is unset or empty.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads and validates the config file at path. Fields the
// file omits keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	for i, file := range cfg.Registry.Files {
		file = expandVars(file)
		if !filepath.IsAbs(file) {
			file = filepath.Join(baseDir, file)
		}
		cfg.Registry.Files[i] = file
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// decodeFile reads path as YAML, or as JSONC when the extension says
// so, into target.
func decodeFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is a subset of YAML, so after jsonc strips comments and
		// trailing commas the YAML decoder (and its yaml struct tags)
		// handles both formats.
		data = jsonc.ToJSON(data)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	for i, entry := range c.Registry.Tags {
		if err := entry.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("registry.tags[%d]: %w", i, err))
		}
	}
	for i, file := range c.Registry.Files {
		if file == "" {
			errs = append(errs, fmt.Errorf("registry.files[%d]: path is empty", i))
		}
	}

	return errors.Join(errs...)
}

// SlogLevel returns Log.Level as a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: want debug, info, warn, or error", c.Log.Level)
	}
	return level, nil
}

// TagRegistry builds the configured tag registry: the built-in set (if
// enabled), then the inline tags, then each tag file in order.
// Conflicting declarations are errors.
func (c *Config) TagRegistry() (*tags.Registry, error) {
	registry := tags.New()
	if c.Registry.Builtin {
		registry = tags.Default()
	}

	var errs []error
	for _, entry := range c.Registry.Tags {
		if err := registry.Register(entry); err != nil {
			errs = append(errs, err)
		}
	}
	for _, file := range c.Registry.Files {
		var entries []tags.Entry
		if err := decodeFile(file, &entries); err != nil {
			errs = append(errs, fmt.Errorf("loading tag file: %w", err))
			continue
		}
		for _, entry := range entries {
			if err := registry.Register(entry); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", file, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return registry, nil
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} from the environment.
// An unset or empty variable takes the default, or the empty string.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}
