// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import (
	"bytes"
	"encoding"
	"fmt"
)

// Tagged is implemented by application types that have a fixed tag.
// Tag must return the same safe tag for every value of the type,
// including the zero value: [To] calls it on a zero value to learn
// which tag to expect.
type Tagged interface {
	Tag() string
}

// Binary is an application type that can be converted into tagged
// form: it knows its tag and has a binary encoding for its payload.
type Binary interface {
	Tagged
	encoding.BinaryMarshaler
}

// BinaryPtr is the pointer side of a bound type T: it knows its tag
// and can decode a payload into T.
type BinaryPtr[T any] interface {
	*T
	Tagged
	encoding.BinaryUnmarshaler
}

// Validator is optionally implemented by bound types (on the pointer
// receiver) to reject payloads that decode but are not valid values,
// such as a point that is not on its curve. A Validate error is
// reported as InvalidData.
type Validator interface {
	Validate() error
}

// From converts an application value to tagged form using its own tag
// and binary encoding.
func From[T Binary](value T) (TaggedBase64, error) {
	payload, err := value.MarshalBinary()
	if err != nil {
		return TaggedBase64{}, dataError("encoding %T: %w", value, err)
	}
	return New(value.Tag(), payload)
}

// To converts a tagged value back into application type T. The tag
// must equal T's tag exactly (InvalidTag otherwise), and the payload
// must decode and validate as a T (InvalidData otherwise).
//
//	key, err := tb64.To[VerifyingKey](tagged)
func To[T any, PT BinaryPtr[T]](tagged TaggedBase64) (T, error) {
	var result T
	target := PT(&result)
	if want := target.Tag(); tagged.tag != want {
		return result, &Error{Kind: InvalidTag, Err: fmt.Errorf("got tag %q, want %q", tagged.tag, want)}
	}
	if err := target.UnmarshalBinary(bytes.Clone(tagged.value)); err != nil {
		var zero T
		return zero, dataError("decoding %T: %w", result, err)
	}
	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			var zero T
			return zero, dataError("validating %T: %w", result, err)
		}
	}
	return result, nil
}

// FormatAs returns the canonical text form of an application value.
func FormatAs[T Binary](value T) (string, error) {
	tagged, err := From(value)
	if err != nil {
		return "", err
	}
	return tagged.String(), nil
}

// ParseAs parses canonical text and converts it into application type
// T. Parse errors come first; tag and payload checks follow as in [To].
func ParseAs[T any, PT BinaryPtr[T]](text string) (T, error) {
	tagged, err := Parse(text)
	if err != nil {
		var zero T
		return zero, err
	}
	return To[T, PT](tagged)
}

// MarshalTextAs implements MarshalText for a bound type:
//
//	func (k VerifyingKey) MarshalText() ([]byte, error) {
//	    return tb64.MarshalTextAs(k)
//	}
func MarshalTextAs[T Binary](value T) ([]byte, error) {
	text, err := FormatAs(value)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// UnmarshalTextAs implements UnmarshalText for a bound type:
//
//	func (k *VerifyingKey) UnmarshalText(text []byte) error {
//	    return tb64.UnmarshalTextAs(k, text)
//	}
//
// On error the target is left unchanged.
func UnmarshalTextAs[T any, PT BinaryPtr[T]](target PT, text []byte) error {
	value, err := ParseAs[T, PT](string(text))
	if err != nil {
		return err
	}
	*target = value
	return nil
}

// MarshalCBORAs implements MarshalCBOR for a bound type, producing the
// same CBOR form as [TaggedBase64.MarshalCBOR].
func MarshalCBORAs[T Binary](value T) ([]byte, error) {
	tagged, err := From(value)
	if err != nil {
		return nil, err
	}
	return tagged.MarshalCBOR()
}

// UnmarshalCBORAs implements UnmarshalCBOR for a bound type. On error
// the target is left unchanged.
func UnmarshalCBORAs[T any, PT BinaryPtr[T]](target PT, data []byte) error {
	var tagged TaggedBase64
	if err := tagged.UnmarshalCBOR(data); err != nil {
		return err
	}
	value, err := To[T, PT](tagged)
	if err != nil {
		return err
	}
	*target = value
	return nil
}
