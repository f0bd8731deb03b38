// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tb64

import "testing"

func TestIsSafeTagChar(t *testing.T) {
	for _, c := range "ABCXYZabcxyz0189-_" {
		if !IsSafeTagChar(c) {
			t.Errorf("IsSafeTagChar(%q) = false, want true", c)
		}
	}
	for _, c := range "~ .+/=!@\t\nΣé\x00\x7f" {
		if IsSafeTagChar(c) {
			t.Errorf("IsSafeTagChar(%q) = true, want false", c)
		}
	}
	if IsSafeTagChar(-1) || IsSafeTagChar(0x1F600) {
		t.Error("IsSafeTagChar accepted an out-of-range rune")
	}
}

func TestIsSafeTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"", true},
		{"TAG", true},
		{"ASSET_CODE", true},
		{"peer-id", true},
		{"0", true},
		{"TAG~", false},
		{"has space", false},
		{"dotted.tag", false},
		{"naïve", false},
	}
	for _, test := range tests {
		if got := IsSafeTag(test.tag); got != test.want {
			t.Errorf("IsSafeTag(%q) = %v, want %v", test.tag, got, test.want)
		}
	}
}
