// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bureau-foundation/tb64/lib/tags"
)

func TestTagsList(t *testing.T) {
	stdout, _, err := execute(t, "", "tags")
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	if fields := strings.Fields(lines[0]); len(fields) != 2 || fields[0] != "TAG" || fields[1] != "KIND" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != tags.Default().Len()+1 {
		t.Errorf("tags printed %d entries, want %d", len(lines)-1, tags.Default().Len())
	}
	if !strings.Contains(stdout, "VERKEY") || !strings.Contains(stdout, "crypto/verifying-key") {
		t.Errorf("tags output missing VERKEY:\n%s", stdout)
	}
}

func TestTagsNamespaceJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "tags", "--json", "network")
	if err != nil {
		t.Fatalf("tags --json network: %v", err)
	}
	var entries []tags.Entry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v, want the two network tags", entries)
	}
	for _, entry := range entries {
		if entry.Namespace != "network" {
			t.Errorf("entry %+v outside the network namespace", entry)
		}
	}
}

func TestTagsWithConfig(t *testing.T) {
	path := writeConfig(t, `
registry:
  builtin: false
  tags:
    - {namespace: app, name: session-token, tag: SESSION}
`)
	stdout, _, err := execute(t, "", "tags", "--config", path)
	if err != nil {
		t.Fatalf("tags: %v", err)
	}
	want := "TAG       KIND\nSESSION   app/session-token\n"
	if stdout != want {
		t.Errorf("tags output = %q, want %q", stdout, want)
	}
}

func TestTagsUnknownNamespace(t *testing.T) {
	_, _, err := execute(t, "", "tags", "nowhere")
	if err == nil || !strings.Contains(err.Error(), `"nowhere"`) {
		t.Errorf("error = %v, want an unknown namespace error", err)
	}
}
