// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import (
	"encoding/binary"

	"github.com/bureau-foundation/tb64/lib/codec"
)

// Binary layout:
//
//	u64le len(tag) | tag bytes | u64le len(value) | value bytes | checksum
//
// Lengths are unsigned 64-bit little-endian. The layout carries the
// stored checksum so that a corrupted record is detected on read.

// lengthPrefixSize is the width of each length prefix.
const lengthPrefixSize = 8

// MarshalBinary implements encoding.BinaryMarshaler.
func (v TaggedBase64) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, 2*lengthPrefixSize+len(v.tag)+len(v.value)+1)
	data = binary.LittleEndian.AppendUint64(data, uint64(len(v.tag)))
	data = append(data, v.tag...)
	data = binary.LittleEndian.AppendUint64(data, uint64(len(v.value)))
	data = append(data, v.value...)
	data = append(data, v.checksum)
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Truncated or
// over-long input is InvalidData, a bad tag character is InvalidTag,
// and a stored checksum that does not match is InvalidChecksum. On
// error v is left unchanged.
func (v *TaggedBase64) UnmarshalBinary(data []byte) error {
	tagBytes, rest, err := readLengthPrefixed(data, "tag")
	if err != nil {
		return err
	}
	value, rest, err := readLengthPrefixed(rest, "value")
	if err != nil {
		return err
	}
	switch {
	case len(rest) == 0:
		return dataError("truncated binary form: missing checksum byte")
	case len(rest) > 1:
		return dataError("%d trailing bytes after checksum", len(rest)-1)
	}

	tag := string(tagBytes)
	if err := validateTag(tag); err != nil {
		return err
	}
	checksum := rest[0]
	if Checksum(tag, value) != checksum {
		return &Error{Kind: InvalidChecksum}
	}
	*v = TaggedBase64{tag: tag, value: append([]byte{}, value...), checksum: checksum}
	return nil
}

// readLengthPrefixed splits a u64le-length-prefixed field off the front
// of data.
func readLengthPrefixed(data []byte, field string) ([]byte, []byte, error) {
	if len(data) < lengthPrefixSize {
		return nil, nil, dataError("truncated binary form: %d bytes left for %s length", len(data), field)
	}
	length := binary.LittleEndian.Uint64(data)
	data = data[lengthPrefixSize:]
	if length > uint64(len(data)) {
		return nil, nil, dataError("%s length %d exceeds the %d remaining bytes", field, length, len(data))
	}
	return data[:length], data[length:], nil
}

// MarshalCBOR implements cbor.Marshaler. The CBOR form is a byte
// string holding the binary layout, so tagged values embedded in
// CBOR-encoded structs stay compact and carry their checksum.
func (v TaggedBase64) MarshalCBOR() ([]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return codec.Marshal(data)
}

// UnmarshalCBOR implements cbor.Unmarshaler. The item must be a CBOR
// byte string holding the binary layout.
func (v *TaggedBase64) UnmarshalCBOR(data []byte) error {
	var layout []byte
	if err := codec.Unmarshal(data, &layout); err != nil {
		return &Error{Kind: InvalidData, Err: err}
	}
	return v.UnmarshalBinary(layout)
}
