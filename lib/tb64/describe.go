// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "errors"

// ErrorReport is a flat, serializable description of an error, for
// JSON output and logs.
type ErrorReport struct {
	// Kind is the ErrorKind name ("invalid_byte"), or "error" for
	// errors that did not come from this package.
	Kind string `json:"kind"`

	// Message is the full error text.
	Message string `json:"message"`

	// Offset and Byte locate the offending input for InvalidTag,
	// InvalidByte, and InvalidLastSymbol. Nil otherwise.
	Offset *int  `json:"offset,omitempty"`
	Byte   *byte `json:"byte,omitempty"`
}

// Describe flattens err into an ErrorReport. Returns nil for a nil
// error.
func Describe(err error) *ErrorReport {
	if err == nil {
		return nil
	}
	report := &ErrorReport{Kind: "error", Message: err.Error()}
	var tbError *Error
	if !errors.As(err, &tbError) {
		return report
	}
	report.Kind = tbError.Kind.String()
	switch tbError.Kind {
	case InvalidByte, InvalidLastSymbol:
		report.Offset, report.Byte = locate(tbError)
	case InvalidTag:
		if tbError.char != 0 {
			report.Offset, report.Byte = locate(tbError)
		}
	}
	return report
}

func locate(e *Error) (*int, *byte) {
	offset, value := e.Offset, e.Byte
	return &offset, &value
}
