// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "unicode/utf8"

// alphabet is the URL-safe base64 alphabet (RFC 4648 §5) in symbol
// order. Tags are restricted to the same characters, so a tag never
// needs escaping anywhere a base64url payload does not.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// invalidSymbol marks bytes outside the alphabet in symbolValues.
const invalidSymbol = 0xFF

// symbolValues maps each byte to its 6-bit base64 value, or
// invalidSymbol for bytes outside the alphabet.
var symbolValues [256]byte

// tagChars marks the bytes permitted in a tag.
var tagChars [256]bool

func init() {
	for i := range symbolValues {
		symbolValues[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		symbolValues[alphabet[i]] = byte(i)
		tagChars[alphabet[i]] = true
	}
}

// IsSafeTagChar reports whether c may appear in a tag: ASCII letters,
// ASCII digits, '-', and '_'.
func IsSafeTagChar(c rune) bool {
	return c >= 0 && c < utf8.RuneSelf && tagChars[c]
}

// IsSafeTag reports whether every character of tag is a safe tag
// character. The empty tag is safe.
func IsSafeTag(tag string) bool {
	for i := 0; i < len(tag); i++ {
		if !tagChars[tag[i]] {
			return false
		}
	}
	return true
}

// validateTag returns an InvalidTag error locating the first unsafe
// character of tag, or nil when the whole tag is safe.
func validateTag(tag string) error {
	for i := 0; i < len(tag); i++ {
		if tagChars[tag[i]] {
			continue
		}
		char, _ := utf8.DecodeRuneInString(tag[i:])
		return &Error{Kind: InvalidTag, Offset: i, Byte: tag[i], char: char}
	}
	return nil
}
