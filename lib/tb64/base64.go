// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "encoding/base64"

// Encoding is the base64 variant used for the payload: the URL-safe
// alphabet without padding. Decoding through Encoding directly is
// lenient about non-canonical trailing bits and skips CR/LF; use
// [DecodeRaw] for the strict, classified decoder.
var Encoding = base64.RawURLEncoding

var strictEncoding = base64.RawURLEncoding.Strict()

// EncodeRaw encodes data as unpadded URL-safe base64. No tag and no
// checksum are involved.
func EncodeRaw(data []byte) string {
	return Encoding.EncodeToString(data)
}

// DecodeRaw decodes unpadded URL-safe base64, rejecting anything that
// is not the canonical encoding of some byte sequence. Errors are
// *Error values of kind InvalidByte, InvalidLength, or
// InvalidLastSymbol, with offsets relative to the start of text.
//
// EncodeRaw and DecodeRaw are inverses: DecodeRaw(EncodeRaw(b)) == b
// for every b.
func DecodeRaw(text string) ([]byte, error) {
	if err := checkCanonical(text); err != nil {
		return nil, err
	}
	decoded, err := strictEncoding.DecodeString(text)
	if err != nil {
		// checkCanonical rejects everything the strict decoder does;
		// reaching this means the two disagree about the alphabet.
		return nil, &Error{Kind: InvalidLength, Err: err}
	}
	return decoded, nil
}

// checkCanonical classifies the first problem with text as unpadded
// URL-safe base64, in order: a byte outside the alphabet, an
// impossible length, then nonzero discarded bits in the last symbol.
func checkCanonical(text string) error {
	for i := 0; i < len(text); i++ {
		if symbolValues[text[i]] == invalidSymbol {
			return &Error{Kind: InvalidByte, Offset: i, Byte: text[i]}
		}
	}

	// Each symbol carries 6 bits. A final group of 2 symbols (12 bits)
	// holds one byte and discards 4 bits; a group of 3 (18 bits) holds
	// two bytes and discards 2 bits. A lone trailing symbol cannot
	// hold a byte at all.
	var discardedBits byte
	switch len(text) % 4 {
	case 1:
		return &Error{Kind: InvalidLength}
	case 2:
		discardedBits = 0x0F
	case 3:
		discardedBits = 0x03
	default:
		return nil
	}
	last := len(text) - 1
	if symbolValues[text[last]]&discardedBits != 0 {
		return &Error{Kind: InvalidLastSymbol, Offset: last, Byte: text[last]}
	}
	return nil
}
