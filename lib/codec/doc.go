// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec holds the shared CBOR configuration for tagged values
// and the records that embed them.
//
// Tagged values have two serialized forms with a clear boundary:
//
//   - Text ("TAG~BASE64") for anything a person reads or edits: JSON,
//     YAML, config files, CLI output.
//   - CBOR for compact machine storage: a byte string holding the
//     length-prefixed binary layout, checksum included.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items, so
// the same value always produces identical bytes and encoded records
// can be compared or hashed directly.
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// Diagnose renders encoded bytes in CBOR diagnostic notation for
// inspection output and test failure messages.
package codec
