// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import (
	"bytes"
	"fmt"
	"strings"
)

// Delimiter separates the tag from the base64 body.
const Delimiter = '~'

// TaggedBase64 is a validated tag, a payload, and the checksum that
// binds them.
//
// TaggedBase64 is an immutable value type: the constructors copy the
// payload in, and [TaggedBase64.Value] copies it out. The checksum
// always equals Checksum(Tag(), Value()). The zero value is the valid
// empty value "~AA".
//
// Because the payload is held as a slice, TaggedBase64 is not
// comparable with ==; use [TaggedBase64.Equal].
type TaggedBase64 struct {
	tag      string
	value    []byte
	checksum byte
}

// New builds a tagged value from a tag and payload. The payload is
// copied. Returns an InvalidTag error if the tag contains a character
// outside the URL-safe base64 alphabet.
func New(tag string, value []byte) (TaggedBase64, error) {
	if err := validateTag(tag); err != nil {
		return TaggedBase64{}, err
	}
	return build(tag, bytes.Clone(value)), nil
}

// MustNew is like New but panics on error. Use in tests and static
// initialization where the tag is known-valid.
func MustNew(tag string, value []byte) TaggedBase64 {
	v, err := New(tag, value)
	if err != nil {
		panic(fmt.Sprintf("tb64.MustNew(%q): %v", tag, err))
	}
	return v
}

// build assembles a value from an already-validated tag and a payload
// the caller no longer shares.
func build(tag string, value []byte) TaggedBase64 {
	return TaggedBase64{tag: tag, value: value, checksum: Checksum(tag, value)}
}

// Parse decodes the canonical text form "TAG~BASE64".
//
// The input is split at the first '~'. Problems are reported in a
// fixed order, so a string with several defects always yields the same
// error kind:
//
//  1. no '~' at all: MissingDelimiter
//  2. a bad tag character: InvalidTag
//  3. nothing after '~': MissingChecksum
//  4. a bad base64 byte, impossible length, or non-canonical last
//     symbol: InvalidByte, InvalidLength, InvalidLastSymbol
//  5. a check byte that does not match: InvalidChecksum
//
// A second '~' belongs to the body and is reported as InvalidByte.
func Parse(text string) (TaggedBase64, error) {
	tag, body, found := strings.Cut(text, string(Delimiter))
	if !found {
		return TaggedBase64{}, &Error{Kind: MissingDelimiter}
	}
	if err := validateTag(tag); err != nil {
		return TaggedBase64{}, err
	}
	if body == "" {
		return TaggedBase64{}, &Error{Kind: MissingChecksum}
	}
	decoded, err := DecodeRaw(body)
	if err != nil {
		return TaggedBase64{}, err
	}
	// A non-empty body that survives DecodeRaw has at least two
	// symbols, so decoded holds at least the check byte.
	value, checksum := decoded[:len(decoded)-1], decoded[len(decoded)-1]
	if Checksum(tag, value) != checksum {
		return TaggedBase64{}, &Error{Kind: InvalidChecksum}
	}
	return TaggedBase64{tag: tag, value: value, checksum: checksum}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(text string) TaggedBase64 {
	v, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("tb64.MustParse(%q): %v", text, err))
	}
	return v
}

// Tag returns the tag.
func (v TaggedBase64) Tag() string { return v.tag }

// Value returns a copy of the payload. The result is never nil.
func (v TaggedBase64) Value() []byte {
	return append([]byte{}, v.value...)
}

// Len returns the payload length in bytes.
func (v TaggedBase64) Len() int { return len(v.value) }

// Checksum returns the stored check byte.
func (v TaggedBase64) Checksum() byte { return v.checksum }

// IsZero reports whether v has an empty tag and an empty payload.
func (v TaggedBase64) IsZero() bool { return v.tag == "" && len(v.value) == 0 }

// Equal reports whether v and other have the same tag and payload.
// (Equal tags and payloads imply equal checksums.)
func (v TaggedBase64) Equal(other TaggedBase64) bool {
	return v.tag == other.tag && bytes.Equal(v.value, other.value)
}

// WithTag returns a copy of v carrying a different tag, with the
// checksum recomputed. v itself is unchanged.
func (v TaggedBase64) WithTag(tag string) (TaggedBase64, error) {
	if err := validateTag(tag); err != nil {
		return TaggedBase64{}, err
	}
	return build(tag, v.value), nil
}

// WithValue returns a copy of v carrying a different payload, with the
// checksum recomputed. The payload is copied; v itself is unchanged.
func (v TaggedBase64) WithValue(value []byte) TaggedBase64 {
	return build(v.tag, bytes.Clone(value))
}

// String returns the canonical text form "TAG~BASE64", where BASE64
// encodes the payload followed by the check byte.
func (v TaggedBase64) String() string {
	body := make([]byte, len(v.value)+1)
	copy(body, v.value)
	body[len(v.value)] = v.checksum

	var builder strings.Builder
	builder.Grow(len(v.tag) + 1 + Encoding.EncodedLen(len(body)))
	builder.WriteString(v.tag)
	builder.WriteByte(Delimiter)
	builder.WriteString(Encoding.EncodeToString(body))
	return builder.String()
}

// Format implements fmt.Formatter. %s and %v print the canonical text
// form, %q prints it quoted, and %+v prints a field breakdown for
// debugging: {tag:KEY len:15 checksum:0x0a}.
func (v TaggedBase64) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v':
		if state.Flag('+') {
			fmt.Fprintf(state, "{tag:%s len:%d checksum:%#02x}", v.tag, len(v.value), v.checksum)
			return
		}
		fmt.Fprint(state, v.String())
	case 's':
		fmt.Fprint(state, v.String())
	case 'q':
		fmt.Fprintf(state, "%q", v.String())
	default:
		fmt.Fprintf(state, "%%!%c(tb64.TaggedBase64=%s)", verb, v.String())
	}
}

// MarshalText implements encoding.TextMarshaler. The result is always
// the canonical text form; the zero value marshals as "~AA".
func (v TaggedBase64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing the
// canonical text form. Empty input is an error (MissingDelimiter), not
// the zero value.
func (v *TaggedBase64) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
