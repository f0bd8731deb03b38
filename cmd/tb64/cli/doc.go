// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the tb64 tool.
//
// The central type is [Command], which represents a named command with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and
// a Run function. [Command.Execute] handles help flags, subcommand
// routing, flag parsing, and structured help output with examples.
//
// Flags are declared as tagged struct fields and bound with
// [FlagsFromParams]. Embedding [JSONOutput] adds a --json flag.
//
// When a user types an unknown subcommand or flag, the framework
// computes Levenshtein edit distance against all known names and
// suggests the closest match (threshold: distance <= 3).
//
// Errors carry the exit status: a [UsageError] means the command line
// itself was wrong (exit 2), an [ExitError] means the command already
// reported a failure and only the status remains, and any other error
// is a plain failure (exit 1).
package cli
