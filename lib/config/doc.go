// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the tb64 tool configuration.
//
// Configuration comes from a single file named by:
//   - the --config flag, or
//   - the TB64_CONFIG environment variable.
//
// With neither set, [Load] returns [Default]: the tool is fully usable
// without a config file. There is no search path and no per-field
// environment override, so what a run did is always explained by one
// file.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas (via tidwall/jsonc); anything else is YAML.
//
// Example:
//
//	registry:
//	  strict: true
//	  tags:
//	    - {namespace: app, name: session-token, tag: SESSION}
//	  files:
//	    - ${HOME}/.config/tb64/team-tags.yaml
//	output:
//	  newline: true
//	log:
//	  level: info
package config
