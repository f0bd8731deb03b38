// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/tb64"
)

type inspectParams struct {
	commonParams
	cli.JSONOutput
	Color string `flag:"color" desc:"colorize output: auto, always, or never" default:"auto"`
}

func inspectCommand(streams Streams) *cli.Command {
	var params inspectParams

	command := &cli.Command{
		Name:    "inspect",
		Summary: "Show the fields of a tagged value, or where it is broken",
		Description: `Parse a tagged base64 value and show its tag, registered kind,
payload, checksum, fingerprint, and CBOR form. If the value does not
parse, show which check failed and point at the offending character.

The value is read from the argument, or from stdin when the argument
is "-" or absent. Surrounding whitespace is ignored.`,
		Usage: "tb64 inspect [flags] [VALUE | -]",
		Examples: []cli.Example{
			{Description: "Inspect a value", Command: "tb64 inspect KEY~cHVibGljIGtleSBiaXRzCg"},
			{Description: "Locate a corrupted character", Command: "tb64 inspect 'TAG~Ew~'"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
	}

	command.Run = func(args []string) error {
		if len(args) > 1 {
			return command.UsageErrorf("expected one value, got %d arguments", len(args))
		}
		renderer, err := newRenderer(streams.Out, params.Color)
		if err != nil {
			return command.UsageErrorf("%v", err)
		}

		env, err := params.load(streams, "inspect")
		if err != nil {
			return err
		}

		text, err := readValueArgument(args, streams.In)
		if err != nil {
			return err
		}

		value, err := tb64.Parse(text)
		if err == nil {
			err = env.checkTag(value.Tag())
		}
		if err != nil {
			env.logger.Debug("inspect found an invalid value", "error", err)
			if done, writeErr := params.EmitJSON(streams.Out, failureReport{Input: text, Error: tb64.Describe(err)}); done {
				if writeErr != nil {
					return writeErr
				}
			} else {
				renderer.failure(streams.Out, text, err)
			}
			return &cli.ExitError{Code: cli.ExitFailure}
		}

		report := env.describe(value)
		report.CBOR, err = cborDiagnostic(value)
		if err != nil {
			return err
		}
		if done, err := params.EmitJSON(streams.Out, report); done {
			return err
		}
		renderer.value(streams.Out, report)
		return nil
	}

	return command
}

// readValueArgument returns the single value argument, or all of stdin
// when the argument is "-" or absent, with surrounding whitespace
// removed.
func readValueArgument(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return strings.TrimSpace(args[0]), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading value from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// inspectRenderer styles human-readable inspect output.
type inspectRenderer struct {
	label lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	faint lipgloss.Style
}

// newRenderer builds the styles for w. "auto" follows the terminal's
// detected color profile; a pipe or file gets plain text.
func newRenderer(w io.Writer, color string) (*inspectRenderer, error) {
	renderer := lipgloss.NewRenderer(w)
	switch color {
	case "auto":
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	default:
		return nil, fmt.Errorf("--color must be auto, always, or never (got %q)", color)
	}
	return &inspectRenderer{
		label: renderer.NewStyle().Bold(true).Width(13),
		good:  renderer.NewStyle().Foreground(lipgloss.Color("2")),
		bad:   renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		faint: renderer.NewStyle().Faint(true),
	}, nil
}

func (r *inspectRenderer) field(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s%s\n", r.label.Render(name+":"), value)
}

// value prints every field of a valid value.
func (r *inspectRenderer) value(w io.Writer, report valueReport) {
	kind := r.faint.Render("(unregistered)")
	if report.Kind != "" {
		kind = report.Kind
	}
	r.field(w, "tagged", report.Tagged)
	r.field(w, "tag", fmt.Sprintf("%s %s", report.Tag, kind))
	r.field(w, "length", fmt.Sprintf("%d bytes", report.Length))
	r.field(w, "value", report.ValueHex)
	r.field(w, "checksum", fmt.Sprintf("%s %s", report.Checksum, r.good.Render("ok")))
	r.field(w, "fingerprint", report.Fingerprint.String())
	r.field(w, "cbor", report.CBOR)
}

// failure prints the error and, when the error has a position, the
// input with a caret under the offending character.
func (r *inspectRenderer) failure(w io.Writer, text string, err error) {
	fmt.Fprintf(w, "%s%s\n", r.label.Render("input:"), text)
	fmt.Fprintf(w, "%s%s\n", r.label.Render("error:"), r.bad.Render(err.Error()))

	column, ok := errorColumn(text, err)
	if !ok {
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", r.label.Render(""), strings.Repeat(" ", column), r.bad.Render("^"))
}

// errorColumn converts an error's offset into a byte position within
// text: tag offsets count from the start, base64 offsets from just
// after the delimiter.
func errorColumn(text string, err error) (int, bool) {
	var tbError *tb64.Error
	if !errors.As(err, &tbError) {
		return 0, false
	}
	switch tbError.Kind {
	case tb64.InvalidTag:
		if tbError.Err != nil {
			return 0, false
		}
		return tbError.Offset, true
	case tb64.InvalidByte, tb64.InvalidLastSymbol:
		delimiter := strings.IndexByte(text, tb64.Delimiter)
		if delimiter < 0 {
			return 0, false
		}
		return delimiter + 1 + tbError.Offset, true
	}
	return 0, false
}
