// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Tag      string   `flag:"tag" desc:"the tag"`
		Verbose  bool     `flag:"verbose,v" desc:"enable verbose output"`
		Count    int      `flag:"count" desc:"number of items"`
		Files    []string `flag:"file" desc:"tag files"`
		Untagged string   // no flag tag: skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{"--tag", "KEY", "-v", "--count", "42", "--file", "a.yaml,b.yaml"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Tag != "KEY" {
		t.Errorf("Tag = %q, want %q", p.Tag, "KEY")
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if len(p.Files) != 2 || p.Files[0] != "a.yaml" || p.Files[1] != "b.yaml" {
		t.Errorf("Files = %v, want [a.yaml b.yaml]", p.Files)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Color   string   `flag:"color" default:"auto"`
		Limit   int      `flag:"limit" default:"10"`
		Newline bool     `flag:"newline" default:"true"`
		Files   []string `flag:"file" default:"x,y"`
	}

	var p params
	if err := FlagsFromParams("test", &p).Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Color != "auto" || p.Limit != 10 || !p.Newline || len(p.Files) != 2 {
		t.Errorf("defaults not applied: %+v", p)
	}
}

func TestBindFlags_EmbeddedStructs(t *testing.T) {
	type common struct {
		Config string `flag:"config" desc:"config file"`
	}
	type params struct {
		common
		JSONOutput
		Decode string `flag:"decode,d"`
	}

	var p params
	flagSet := FlagsFromParams("test", &p)
	if err := flagSet.Parse([]string{"--config", "c.yaml", "--json", "-d", "TAG~Ew"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Config != "c.yaml" || !p.OutputJSON || p.Decode != "TAG~Ew" {
		t.Errorf("embedded flags not bound: %+v", p)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	notPointer := struct{}{}
	if err := BindFlags(notPointer, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("BindFlags accepted a non-pointer")
	}

	var unsupported struct {
		Rate float32 `flag:"rate"`
	}
	err := BindFlags(&unsupported, pflag.NewFlagSet("x", pflag.ContinueOnError))
	if err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("BindFlags(float32) error = %v, want unsupported type", err)
	}

	var badDefault struct {
		Limit int `flag:"limit" default:"many"`
	}
	if err := BindFlags(&badDefault, pflag.NewFlagSet("x", pflag.ContinueOnError)); err == nil {
		t.Error("BindFlags accepted a malformed int default")
	}
}

func TestFlagsFromParams_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic on a non-struct")
		}
	}()
	var notStruct int
	FlagsFromParams("bad", &notStruct)
}
