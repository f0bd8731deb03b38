// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// tb64 encodes and decodes tagged base64 values from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/cmd/tb64/commands"
)

func main() {
	os.Exit(run(os.Args[1:], commands.StandardStreams()))
}

// run executes the command tree and maps its error to an exit status.
// Commands that already printed their own report return a
// cli.ExitError, so no "error:" line is added for those.
func run(args []string, streams commands.Streams) int {
	err := commands.Root(streams).Execute(args)
	code, report := cli.ExitCode(err)
	if report {
		fmt.Fprintf(streams.Err, "error: %v\n", err)
	}
	return code
}
