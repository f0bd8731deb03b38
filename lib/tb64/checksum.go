// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "github.com/sigurn/crc8"

// crcTable is the lookup table for CRC-8 with polynomial 0x07, zero
// initial value, no input or output reflection, and no final XOR
// (check value 0xF4 over "123456789").
var crcTable = crc8.MakeTable(crc8.CRC8)

// Checksum returns the check byte for a tag and payload: the CRC-8 of
// the tag bytes followed by the payload bytes, XORed with the payload
// length truncated to eight bits. The result is part of the wire
// format and must not change.
func Checksum(tag string, value []byte) byte {
	crc := crc8.Init(crcTable)
	crc = crc8.Update(crc, []byte(tag), crcTable)
	crc = crc8.Update(crc, value, crcTable)
	return crc8.Complete(crc, crcTable) ^ byte(len(value))
}
