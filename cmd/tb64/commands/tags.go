// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/tags"
)

type tagsParams struct {
	commonParams
	cli.JSONOutput
}

func tagsCommand(streams Streams) *cli.Command {
	var params tagsParams

	command := &cli.Command{
		Name:    "tags",
		Summary: "List registered tags",
		Description: `List the tags in the registry: the built-in set (unless
registry.builtin is false) plus any declared in the config file.
With a NAMESPACE argument, list only that namespace.`,
		Usage: "tb64 tags [flags] [NAMESPACE]",
		Examples: []cli.Example{
			{Description: "Show the cryptographic tags", Command: "tb64 tags crypto"},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tags", &params)
		},
	}

	command.Run = func(args []string) error {
		if len(args) > 1 {
			return command.UsageErrorf("expected at most one namespace, got %d arguments", len(args))
		}
		env, err := params.load(streams, "tags")
		if err != nil {
			return err
		}

		var entries []tags.Entry
		if len(args) == 1 {
			entries = env.registry.Namespace(args[0])
			if len(entries) == 0 {
				return fmt.Errorf("no tags registered in namespace %q", args[0])
			}
		} else {
			entries = env.registry.Entries()
		}

		if done, err := params.EmitJSON(streams.Out, entries); done {
			return err
		}
		writer := tabwriter.NewWriter(streams.Out, 2, 0, 3, ' ', 0)
		fmt.Fprintln(writer, "TAG\tKIND")
		for _, entry := range entries {
			fmt.Fprintf(writer, "%s\t%s\n", entry.Tag, entry.QualifiedName())
		}
		return writer.Flush()
	}

	return command
}
