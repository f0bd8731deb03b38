// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tb64 implements tagged base64: a compact, URL-safe text
// encoding for small binary values (keys, signatures, commitments,
// identifiers) that carries a human-readable type tag and a one-byte
// integrity check.
//
// The canonical text form is
//
//	TAG~BASE64
//
// where TAG is a (possibly empty) run of URL-safe base64 alphabet
// characters (A-Z, a-z, 0-9, '-', '_') and BASE64 is the unpadded
// URL-safe base64 encoding (RFC 4648 §5) of the payload bytes followed
// by a single checksum byte. The checksum is the CRC-8 (polynomial
// 0x07, zero init, no reflection) of the tag bytes and then the payload
// bytes, XORed with the low eight bits of the payload length:
//
//	Checksum("TAG", nil) = 0x13      ->  "TAG~Ew"
//	Checksum("", nil)    = 0x00      ->  "~AA"
//
// The tag lets a reader see at a glance what a string represents, and
// lets a decoder reject a well-formed value of the wrong kind. The
// checksum catches transcription errors: every single-bit change to the
// payload or checksum is detected.
//
// [TaggedBase64] is an immutable value type. Constructors ([New],
// [Parse]) validate their input; once built, a value always satisfies
// its own checksum and always renders to a string that [Parse] accepts
// and maps back to an equal value. The zero value is valid: empty tag,
// empty payload, text form "~AA".
//
// Parse failures are reported as *[Error] with an [ErrorKind] naming
// exactly what was wrong (missing delimiter, bad tag character, bad
// base64 byte and its offset, checksum mismatch, ...). Match kinds with
// errors.Is against the Err* sentinels, or extract the details with
// errors.As. [Describe] flattens any error into a serializable
// [ErrorReport] for machine-readable output.
//
// # Serialization
//
// TaggedBase64 implements encoding.TextMarshaler (JSON strings, YAML
// scalars, config files), encoding.BinaryMarshaler (a length-prefixed
// layout for compact storage), and cbor.Marshaler (a CBOR byte string
// wrapping the binary layout, encoded through lib/codec).
//
// # Binding application types
//
// A type that knows its own tag ([Tagged]) and has a binary encoding
// can be converted to and from tagged form with [From], [To],
// [FormatAs], and [ParseAs]. [MarshalTextAs] and [UnmarshalTextAs] let
// such a type implement its own MarshalText/UnmarshalText in one line
// each, so it serializes as a tagged string in every text format. A
// decoded payload that carries the wrong tag fails with InvalidTag;
// one whose bytes do not decode into the type fails with InvalidData.
package tb64
