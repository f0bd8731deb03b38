// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// Exit statuses.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output (an error report in --json mode, or a list of invalid
// inputs from check).
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError reports a malformed command line: an unknown command or
// flag, a missing or conflicting flag, or a stray argument. The
// message is printed and the process exits with ExitUsage.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by [Command.Execute] to a process
// exit status, and reports whether the error message still needs to be
// printed.
func ExitCode(err error) (code int, report bool) {
	if err == nil {
		return ExitSuccess, false
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage, true
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code, false
	}
	return ExitFailure, true
}
