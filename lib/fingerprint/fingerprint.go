// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fingerprint computes short, stable identifiers for tagged
// values, for display and for indexing values whose text form is too
// long to compare by eye.
//
// A fingerprint is the BLAKE3 keyed hash of the value's canonical text
// form under a fixed domain key, so it covers the tag, the payload,
// and the checksum, and it never collides with a BLAKE3 hash of the
// same bytes computed for any other purpose.
package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/tb64/lib/tb64"
)

// Size is the digest length in bytes.
const Size = 32

// ShortLength is the number of hex characters in a short fingerprint.
const ShortLength = 16

// Digest is a fingerprint.
type Digest [Size]byte

// domainKey is the 32-byte BLAKE3 key: the ASCII domain name,
// zero-padded.
var domainKey = makeDomainKey("tb64.fingerprint.v1")

func makeDomainKey(name string) [32]byte {
	if len(name) > 32 {
		panic("fingerprint: domain name longer than 32 bytes: " + name)
	}
	var key [32]byte
	copy(key[:], name)
	return key
}

// Of returns the fingerprint of a tagged value.
func Of(value tb64.TaggedBase64) Digest {
	return Text(value.String())
}

// Text returns the fingerprint of canonical text. Callers holding a
// string that has not been parsed should parse it first; the
// fingerprint of a non-canonical string matches no value.
func Text(canonical string) Digest {
	hasher, err := blake3.NewKeyed(domainKey[:])
	if err != nil {
		panic("fingerprint: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(canonical))
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// String returns the full hex encoding.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first ShortLength hex characters, for display.
func (d Digest) Short() string {
	return d.String()[:ShortLength]
}

// IsZero reports whether d is all zero bytes.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// MarshalText implements encoding.TextMarshaler (full hex form).
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Parse parses a full hex-encoded fingerprint. Short fingerprints are
// not accepted.
func Parse(hexString string) (Digest, error) {
	var digest Digest
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing fingerprint: %w", err)
	}
	if len(decoded) != Size {
		return digest, fmt.Errorf("fingerprint is %d bytes, want %d", len(decoded), Size)
	}
	copy(digest[:], decoded)
	return digest, nil
}
