// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the tb64 command tree.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/tb64"
	"github.com/bureau-foundation/tb64/lib/version"
)

type rootParams struct {
	commonParams
	cli.JSONOutput
	Decode  string `flag:"decode,d" desc:"decode a tagged base64 string and write its payload to stdout"`
	Tag     string `flag:"tag" desc:"read a payload from stdin and write it as tagged base64 with this tag"`
	Version bool   `flag:"version" desc:"print version information and exit"`
}

// Root returns the tb64 command tree bound to streams.
func Root(streams Streams) *cli.Command {
	var params rootParams

	root := &cli.Command{
		Name:    "tb64",
		Summary: "Encode and decode tagged base64 values",
		Description: `Encode and decode tagged base64: TAG~BASE64, where BASE64 is the
unpadded URL-safe base64 encoding of the payload followed by a
CRC-8 check byte.

With --tag, reads the payload from stdin and writes the tagged
string. With --decode, verifies a tagged string and writes the raw
payload bytes to stdout. Exactly one of the two is required unless
a subcommand is given.

Exit status: 0 on success, 1 if the input is invalid, 2 on a usage
error.`,
		Usage:  "tb64 (--tag TAG | --decode VALUE) [flags]\n  tb64 <command> [flags]",
		Stderr: streams.Err,
		Examples: []cli.Example{
			{Description: "Tag 32 random bytes as a key", Command: "head -c 32 /dev/urandom | tb64 --tag KEY"},
			{Description: "Recover the payload", Command: "tb64 --decode KEY~... > key.bin"},
			{Description: "Describe a decode failure as JSON", Command: "tb64 --json -d 'TAG~Ex'"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tb64", &params)
		},
		Subcommands: []*cli.Command{
			inspectCommand(streams),
			checkCommand(streams),
			tagsCommand(streams),
			versionCommand(streams),
		},
	}

	root.Run = func(args []string) error {
		if params.Version {
			_, err := fmt.Fprintln(streams.Out, version.Info())
			return err
		}
		if len(args) > 0 {
			return root.UsageErrorf("unexpected argument %q", args[0])
		}

		decoding, encoding := root.Changed("decode"), root.Changed("tag")
		switch {
		case decoding && encoding:
			return root.UsageErrorf("--decode and --tag are mutually exclusive")
		case !decoding && !encoding:
			return root.UsageErrorf("one of --tag or --decode is required")
		}

		env, err := params.load(streams, "tb64")
		if err != nil {
			return err
		}
		if decoding {
			return runDecode(env, streams, &params.JSONOutput, params.Decode)
		}
		return runEncode(env, streams, &params.JSONOutput, params.Tag)
	}

	return root
}

// runDecode verifies text and writes its payload bytes, unmodified, to
// stdout.
func runDecode(env *environment, streams Streams, output *cli.JSONOutput, text string) error {
	value, err := tb64.Parse(text)
	if err == nil {
		err = env.checkTag(value.Tag())
	}
	if err != nil {
		env.logger.Debug("decode failed", "error", err)
		return reportFailure(streams, output, text, err)
	}

	env.logger.Debug("decoded", "tag", value.Tag(), "length", value.Len())
	if done, err := output.EmitJSON(streams.Out, env.describe(value)); done {
		return err
	}
	_, err = streams.Out.Write(value.Value())
	return err
}

// runEncode reads the whole of stdin as the payload and writes the
// tagged string.
func runEncode(env *environment, streams Streams, output *cli.JSONOutput, tag string) error {
	payload, err := io.ReadAll(streams.In)
	if err != nil {
		return fmt.Errorf("reading payload from stdin: %w", err)
	}
	value, err := tb64.New(tag, payload)
	if err == nil {
		err = env.checkTag(tag)
	}
	if err != nil {
		env.logger.Debug("encode failed", "error", err)
		return reportFailure(streams, output, tag, err)
	}

	env.logger.Debug("encoded", "tag", tag, "length", value.Len())
	if done, err := output.EmitJSON(streams.Out, env.describe(value)); done {
		return err
	}
	text := value.String()
	if env.config.Output.Newline {
		text += "\n"
	}
	_, err = io.WriteString(streams.Out, text)
	return err
}

// reportFailure writes err as a JSON failure report for input when
// --json is set, and otherwise returns it for main to print.
func reportFailure(streams Streams, output *cli.JSONOutput, input string, err error) error {
	done, writeErr := output.EmitJSON(streams.Out, failureReport{Input: input, Error: tb64.Describe(err)})
	if !done {
		return err
	}
	if writeErr != nil {
		return writeErr
	}
	return &cli.ExitError{Code: cli.ExitFailure}
}

func versionCommand(streams Streams) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print detailed version information",
		Run: func(args []string) error {
			_, err := fmt.Fprintln(streams.Out, version.Full())
			return err
		},
	}
}
