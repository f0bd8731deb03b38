// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "fmt"

// ErrorKind classifies why a tagged base64 operation failed.
type ErrorKind int

const (
	// InvalidTag: the tag contains a character outside the URL-safe
	// base64 alphabet, or (for bound types) does not match the tag the
	// target type expects.
	InvalidTag ErrorKind = iota + 1

	// MissingDelimiter: the input contains no '~'.
	MissingDelimiter

	// MissingChecksum: nothing follows the delimiter, so there is no
	// room for even the checksum byte.
	MissingChecksum

	// InvalidByte: the base64 portion contains a byte outside the
	// URL-safe alphabet. Padding ('=') is never accepted.
	InvalidByte

	// InvalidLastSymbol: the final base64 symbol has nonzero bits in
	// the positions that carry no data, so the string is not the
	// canonical encoding of any byte sequence.
	InvalidLastSymbol

	// InvalidLength: the base64 portion has a length that no byte
	// sequence encodes to (length mod 4 == 1).
	InvalidLength

	// InvalidChecksum: the decoded check byte does not match the tag
	// and payload.
	InvalidChecksum

	// InvalidData: a binary or CBOR form is malformed, or a payload
	// does not decode into the requested application type.
	InvalidData
)

var kindNames = map[ErrorKind]string{
	InvalidTag:        "invalid_tag",
	MissingDelimiter:  "missing_delimiter",
	MissingChecksum:   "missing_checksum",
	InvalidByte:       "invalid_byte",
	InvalidLastSymbol: "invalid_last_symbol",
	InvalidLength:     "invalid_length",
	InvalidChecksum:   "invalid_checksum",
	InvalidData:       "invalid_data",
}

// String returns the snake_case name of the kind ("invalid_byte").
// This is the form used in machine-readable error reports.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("error_kind(%d)", int(k))
}

// Error is the error type returned by every fallible operation in this
// package.
//
// Offset and Byte locate the offending input for InvalidTag (offset
// into the tag), InvalidByte, and InvalidLastSymbol (offset into the
// base64 portion, counted from the first byte after the delimiter).
// They are zero for the other kinds. Err carries the underlying cause
// when there is one, chiefly for InvalidData.
type Error struct {
	Kind   ErrorKind
	Offset int
	Byte   byte
	Err    error

	// char is the full (possibly multi-byte) offending tag character,
	// for the InvalidTag message.
	char rune
}

// Sentinels for errors.Is. An *Error matches a sentinel when the kinds
// are equal, regardless of position or cause:
//
//	if errors.Is(err, tb64.ErrInvalidChecksum) { ... }
var (
	ErrInvalidTag        = &Error{Kind: InvalidTag}
	ErrMissingDelimiter  = &Error{Kind: MissingDelimiter}
	ErrMissingChecksum   = &Error{Kind: MissingChecksum}
	ErrInvalidByte       = &Error{Kind: InvalidByte}
	ErrInvalidLastSymbol = &Error{Kind: InvalidLastSymbol}
	ErrInvalidLength     = &Error{Kind: InvalidLength}
	ErrInvalidChecksum   = &Error{Kind: InvalidChecksum}
	ErrInvalidData       = &Error{Kind: InvalidData}
)

func (e *Error) Error() string {
	var message string
	switch e.Kind {
	case InvalidTag:
		if e.char != 0 {
			message = fmt.Sprintf("invalid tag character %q at position %d (allowed: A-Z, a-z, 0-9, '-', '_')", e.char, e.Offset)
		} else {
			message = "invalid tag"
		}
	case MissingDelimiter:
		message = "missing delimiter '~'"
	case MissingChecksum:
		message = "missing checksum: nothing follows '~'"
	case InvalidByte:
		message = fmt.Sprintf("invalid base64 byte %q at offset %d", e.Byte, e.Offset)
	case InvalidLastSymbol:
		message = fmt.Sprintf("invalid last base64 symbol %q at offset %d: trailing bits are not zero", e.Byte, e.Offset)
	case InvalidLength:
		message = "invalid base64 length"
	case InvalidChecksum:
		message = "checksum mismatch"
	case InvalidData:
		message = "invalid data"
	default:
		message = e.Kind.String()
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return "tb64: " + message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Kind == e.Kind
}

// dataError wraps cause as an InvalidData error.
func dataError(format string, args ...any) *Error {
	return &Error{Kind: InvalidData, Err: fmt.Errorf(format, args...)}
}
