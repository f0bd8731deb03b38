// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/bureau-foundation/tb64/lib/codec"
	"github.com/bureau-foundation/tb64/lib/fingerprint"
	"github.com/bureau-foundation/tb64/lib/tb64"
)

// valueReport is the JSON description of a tagged value.
type valueReport struct {
	Tagged      string             `json:"tagged"`
	Tag         string             `json:"tag"`
	Kind        string             `json:"kind,omitempty"`
	Length      int                `json:"length"`
	ValueHex    string             `json:"value_hex"`
	Checksum    string             `json:"checksum"`
	Fingerprint fingerprint.Digest `json:"fingerprint"`
	CBOR        string             `json:"cbor,omitempty"`
}

// failureReport is the JSON output for an input that failed.
type failureReport struct {
	Input string            `json:"input"`
	Error *tb64.ErrorReport `json:"error"`
}

func (e *environment) describe(value tb64.TaggedBase64) valueReport {
	return valueReport{
		Tagged:      value.String(),
		Tag:         value.Tag(),
		Kind:        e.kind(value.Tag()),
		Length:      value.Len(),
		ValueHex:    hex.EncodeToString(value.Value()),
		Checksum:    fmt.Sprintf("%#02x", value.Checksum()),
		Fingerprint: fingerprint.Of(value),
	}
}

// cborDiagnostic renders the CBOR form of value in diagnostic notation.
func cborDiagnostic(value tb64.TaggedBase64) (string, error) {
	encoded, err := codec.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encoding CBOR: %w", err)
	}
	return codec.Diagnose(encoded)
}
