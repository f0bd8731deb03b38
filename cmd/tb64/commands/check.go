// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/tb64"
)

// maxLineLength bounds one input line when checking from stdin.
const maxLineLength = 1 << 20

type checkParams struct {
	commonParams
	cli.JSONOutput
	Quiet bool `flag:"quiet,q" desc:"print only invalid values and no summary"`
}

// checkResult is the outcome for one input value.
type checkResult struct {
	Input string            `json:"input"`
	Valid bool              `json:"valid"`
	Tag   string            `json:"tag,omitempty"`
	Kind  string            `json:"kind,omitempty"`
	Error *tb64.ErrorReport `json:"error,omitempty"`
}

func checkCommand(streams Streams) *cli.Command {
	var params checkParams

	command := &cli.Command{
		Name:    "check",
		Summary: "Verify many tagged values",
		Description: `Verify each value given as an argument, or each non-blank line of
stdin when there are no arguments. Prints one line per value and a
summary; exits 1 if any value is invalid.`,
		Usage: "tb64 check [flags] [VALUE...]",
		Examples: []cli.Example{
			{Description: "Verify every key in a file", Command: "tb64 check < keys.txt"},
			{Description: "Report only the broken ones as JSON", Command: "tb64 check --quiet --json < keys.txt"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("check", &params)
		},
	}

	command.Run = func(args []string) error {
		env, err := params.load(streams, "check")
		if err != nil {
			return err
		}

		inputs := args
		if len(inputs) == 0 {
			inputs, err = readLines(streams.In)
			if err != nil {
				return err
			}
		}

		var results []checkResult
		invalid := 0
		for _, input := range inputs {
			result := checkResult{Input: input, Valid: true}
			value, err := tb64.Parse(input)
			if err == nil {
				err = env.checkTag(value.Tag())
			}
			if err != nil {
				invalid++
				result.Valid = false
				result.Error = tb64.Describe(err)
				env.logger.Debug("invalid value", "input", input, "error", err)
			} else {
				result.Tag = value.Tag()
				result.Kind = env.kind(value.Tag())
			}
			if !result.Valid || !params.Quiet {
				results = append(results, result)
			}
		}

		if done, err := params.EmitJSON(streams.Out, results); done {
			if err != nil {
				return err
			}
		} else {
			writeCheckResults(streams.Out, results)
			if !params.Quiet {
				fmt.Fprintf(streams.Out, "%d of %d valid\n", len(inputs)-invalid, len(inputs))
			}
		}

		if invalid > 0 {
			return &cli.ExitError{Code: cli.ExitFailure}
		}
		return nil
	}

	return command
}

func writeCheckResults(w io.Writer, results []checkResult) {
	for _, result := range results {
		if result.Valid {
			fmt.Fprintf(w, "ok    %s\n", result.Input)
			continue
		}
		fmt.Fprintf(w, "FAIL  %s: %s\n", result.Input, result.Error.Message)
	}
}

// readLines returns the non-blank lines of r, trimmed.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	var lines []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading values from stdin: %w", err)
	}
	return lines, nil
}
