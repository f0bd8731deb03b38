// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/config"
	"github.com/bureau-foundation/tb64/lib/tags"
)

// Streams are the standard streams a command reads and writes. Tests
// substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StandardStreams returns the process's stdin, stdout, and stderr.
func StandardStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// commonParams are the flags every command accepts.
type commonParams struct {
	Config  string `flag:"config" desc:"config file (default: $TB64_CONFIG, else built-in defaults)"`
	Verbose bool   `flag:"verbose,v" desc:"log diagnostics at debug level"`
}

// environment is the loaded configuration a command runs against.
type environment struct {
	config   *config.Config
	registry *tags.Registry
	logger   *slog.Logger
}

// errUnregisteredTag is returned in strict mode for tags the registry
// does not know.
var errUnregisteredTag = errors.New("tag is not registered")

// load reads the configuration, builds the tag registry, and creates
// the command's logger.
func (p *commonParams) load(streams Streams, command string) (*environment, error) {
	var cfg *config.Config
	var err error
	source := p.Config
	if source != "" {
		cfg, err = config.LoadFile(source)
	} else {
		source = os.Getenv(config.EnvironmentVariable)
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if p.Verbose {
		level = slog.LevelDebug
	}
	logger := cli.NewCommandLogger(streams.Err, level).With("command", command)

	registry, err := cfg.TagRegistry()
	if err != nil {
		return nil, fmt.Errorf("building tag registry: %w", err)
	}

	if source == "" {
		source = "(defaults)"
	}
	logger.Debug("configuration loaded",
		"config", source,
		"registered_tags", registry.Len(),
		"strict", cfg.Registry.Strict,
	)
	return &environment{config: cfg, registry: registry, logger: logger}, nil
}

// checkTag applies the registry policy to tag: unknown tags are
// logged, and rejected in strict mode.
func (e *environment) checkTag(tag string) error {
	if entry, ok := e.registry.Lookup(tag); ok {
		e.logger.Debug("tag recognized", "tag", tag, "kind", entry.QualifiedName())
		return nil
	}
	if e.config.Registry.Strict {
		return fmt.Errorf("%w: %q (registry.strict is enabled)", errUnregisteredTag, tag)
	}
	e.logger.Info("tag not registered", "tag", tag)
	return nil
}

// kind returns the registered "namespace/name" for tag, or "".
func (e *environment) kind(tag string) string {
	if entry, ok := e.registry.Lookup(tag); ok {
		return entry.QualifiedName()
	}
	return ""
}
