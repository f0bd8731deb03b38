// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseErrorClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *Error
	}{
		{"empty input", "", ErrMissingDelimiter},
		{"no delimiter", "TAG", ErrMissingDelimiter},
		{"no delimiter beats bad tag", "bad tag!", ErrMissingDelimiter},
		{"space in tag", "TA G~Ew", ErrInvalidTag},
		{"non-ASCII tag", "Σ~AA", ErrInvalidTag},
		{"bad tag beats missing checksum", "ba d~", ErrInvalidTag},
		{"nothing after delimiter", "TAG~", ErrMissingChecksum},
		{"bare delimiter", "~", ErrMissingChecksum},
		{"single symbol", "TAG~E", ErrInvalidLength},
		{"padding", "TAG~Ew==", ErrInvalidByte},
		{"second delimiter", "TAG~Ew~", ErrInvalidByte},
		{"leading second delimiter", "~~AA", ErrInvalidByte},
		{"nonzero trailing bits", "TAG~Ex", ErrInvalidLastSymbol},
		{"wrong check byte", "TAG~Eg", ErrInvalidChecksum},
		{"zero payload wrong check", "AAA~AAA", ErrInvalidChecksum},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := Parse(test.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", test.input, value)
			}
			if !errors.Is(err, test.want) {
				t.Errorf("Parse(%q) error = %v, want kind %v", test.input, err, test.want.Kind)
			}
		})
	}
}

func TestParseErrorOffsets(t *testing.T) {
	tests := []struct {
		input  string
		kind   ErrorKind
		offset int
		char   byte
	}{
		// Base64 offsets count from the first byte after '~'.
		{"TAG~Ew~", InvalidByte, 2, '~'},
		{"KEY~cHVi=GljIGtleSBiaXRzCg", InvalidByte, 4, '='},
		{"TAG~Ex", InvalidLastSymbol, 1, 'x'},
		// Tag offsets count from the start of the input.
		{"TA G~Ew", InvalidTag, 2, ' '},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var tbError *Error
		if !errors.As(err, &tbError) {
			t.Fatalf("Parse(%q) error = %v, want *Error", test.input, err)
		}
		if tbError.Kind != test.kind || tbError.Offset != test.offset || tbError.Byte != test.char {
			t.Errorf("Parse(%q) = {%v offset %d byte %q}, want {%v offset %d byte %q}",
				test.input, tbError.Kind, tbError.Offset, tbError.Byte, test.kind, test.offset, test.char)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"TAG", "missing delimiter"},
		{"Σ~AA", `'Σ' at position 0`},
		{"TAG~", "missing checksum"},
		{"TAG~Ew==", `'=' at offset 2`},
		{"TAG~Ex", `'x' at offset 1`},
		{"TAG~E", "invalid base64 length"},
		{"TAG~Eg", "checksum mismatch"},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", test.input)
		}
		message := err.Error()
		if !strings.HasPrefix(message, "tb64: ") {
			t.Errorf("Parse(%q) error %q lacks the tb64: prefix", test.input, message)
		}
		if !strings.Contains(message, test.contains) {
			t.Errorf("Parse(%q) error = %q, want it to contain %q", test.input, message, test.contains)
		}
	}
}

func TestErrorIsMatchesKindOnly(t *testing.T) {
	err := fmt.Errorf("loading key: %w", &Error{Kind: InvalidByte, Offset: 7, Byte: '!'})
	if !errors.Is(err, ErrInvalidByte) {
		t.Error("wrapped InvalidByte should match ErrInvalidByte")
	}
	if errors.Is(err, ErrInvalidLength) {
		t.Error("InvalidByte should not match ErrInvalidLength")
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("point not on curve")
	err := &Error{Kind: InvalidData, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("InvalidData should unwrap to its cause")
	}
	if !strings.HasSuffix(err.Error(), "point not on curve") {
		t.Errorf("Error() = %q, want the cause appended", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	if got := InvalidLastSymbol.String(); got != "invalid_last_symbol" {
		t.Errorf("InvalidLastSymbol.String() = %q", got)
	}
	if got := ErrorKind(99).String(); got != "error_kind(99)" {
		t.Errorf("ErrorKind(99).String() = %q", got)
	}
}
