// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bureau-foundation/tb64/cmd/tb64/cli"
	"github.com/bureau-foundation/tb64/lib/config"
	"github.com/bureau-foundation/tb64/lib/tb64"
	"github.com/bureau-foundation/tb64/lib/version"
)

// execute runs the command tree with stdin and returns what it wrote.
// TB64_CONFIG is cleared so the host environment cannot leak in.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	var stdout, stderr bytes.Buffer
	streams := Streams{In: strings.NewReader(stdin), Out: &stdout, Err: &stderr}
	err := Root(streams).Execute(args)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tb64.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func requireUsageError(t *testing.T, err error) {
	t.Helper()
	var usage *cli.UsageError
	if !errors.As(err, &usage) {
		t.Fatalf("error = %v, want *cli.UsageError", err)
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		tag, payload, want string
	}{
		{"TAG", "", "TAG~Ew\n"},
		{"", "", "~AA\n"},
		{"KEY", "public key bits", "KEY~cHVibGljIGtleSBiaXRzCg\n"},
		{"T", "123", "T~MTIzZw\n"},
	}
	for _, test := range tests {
		stdout, _, err := execute(t, test.payload, "--tag", test.tag)
		if err != nil {
			t.Fatalf("--tag %q: %v", test.tag, err)
		}
		if stdout != test.want {
			t.Errorf("--tag %q with %q = %q, want %q", test.tag, test.payload, stdout, test.want)
		}
	}
}

func TestEncodeInvalidTag(t *testing.T) {
	_, _, err := execute(t, "x", "--tag", "NOT SAFE")
	if !errors.Is(err, tb64.ErrInvalidTag) {
		t.Errorf("error = %v, want InvalidTag", err)
	}
}

func TestDecodeWritesRawPayload(t *testing.T) {
	binary := string([]byte{0, 1, 2, 0xff, '\n'})
	encoded := tb64.MustNew("BIN", []byte(binary)).String()

	stdout, _, err := execute(t, "", "--decode", encoded)
	if err != nil {
		t.Fatalf("--decode: %v", err)
	}
	if stdout != binary {
		t.Errorf("--decode wrote %q, want %q", stdout, binary)
	}

	stdout, _, err = execute(t, "", "-d", "KEY~cHVibGljIGtleSBiaXRzCg")
	if err != nil {
		t.Fatalf("-d: %v", err)
	}
	if stdout != "public key bits" {
		t.Errorf("-d wrote %q, want %q", stdout, "public key bits")
	}
}

func TestDecodeFailure(t *testing.T) {
	stdout, _, err := execute(t, "", "--decode", "TAG~Eg")
	if !errors.Is(err, tb64.ErrInvalidChecksum) {
		t.Errorf("error = %v, want InvalidChecksum", err)
	}
	if stdout != "" {
		t.Errorf("failed decode wrote %q to stdout", stdout)
	}

	// An explicitly empty --decode is an attempt to decode "".
	_, _, err = execute(t, "", "--decode", "")
	if !errors.Is(err, tb64.ErrMissingDelimiter) {
		t.Errorf("--decode \"\" error = %v, want MissingDelimiter", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "--json", "-d", "VERKEY~AAECAwQFBgcICQoLDA0OD3c")
	if err != nil {
		t.Fatalf("--json -d: %v", err)
	}
	var report valueReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Unmarshal %q: %v", stdout, err)
	}
	if report.Tag != "VERKEY" || report.Kind != "crypto/verifying-key" || report.Length != 16 {
		t.Errorf("report = %+v", report)
	}
	if report.ValueHex != "000102030405060708090a0b0c0d0e0f" || report.Checksum != "0x77" {
		t.Errorf("report value/checksum = %s/%s", report.ValueHex, report.Checksum)
	}
}

func TestDecodeJSONFailure(t *testing.T) {
	stdout, _, err := execute(t, "", "--json", "-d", "TAG~Ew~")
	var exit *cli.ExitError
	if !errors.As(err, &exit) || exit.Code != cli.ExitFailure {
		t.Fatalf("error = %v, want ExitError{1}", err)
	}
	var report failureReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Unmarshal %q: %v", stdout, err)
	}
	if report.Input != "TAG~Ew~" || report.Error.Kind != "invalid_byte" || *report.Error.Offset != 2 {
		t.Errorf("report = %+v (error %+v)", report, report.Error)
	}
}

func TestEncodeJSONFailure(t *testing.T) {
	stdout, _, err := execute(t, "x", "--json", "--tag", "A/A")
	var exit *cli.ExitError
	if !errors.As(err, &exit) || exit.Code != cli.ExitFailure {
		t.Fatalf("error = %v, want ExitError{1}", err)
	}
	var report failureReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Unmarshal %q: %v", stdout, err)
	}
	if report.Input != "A/A" || report.Error.Kind != "invalid_tag" || report.Error.Offset == nil || *report.Error.Offset != 1 {
		t.Errorf("report = %+v (error %+v)", report, report.Error)
	}
	if report.Error.Byte == nil || *report.Error.Byte != '/' {
		t.Errorf("report byte = %v, want '/'", report.Error.Byte)
	}
}

func TestEncodeJSONStrictFailure(t *testing.T) {
	path := writeConfig(t, "registry:\n  strict: true\n")
	stdout, _, err := execute(t, "x", "--config", path, "--json", "--tag", "TAG")
	var exit *cli.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	var report failureReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Unmarshal %q: %v", stdout, err)
	}
	if report.Input != "TAG" || report.Error == nil {
		t.Errorf("report = %+v", report)
	}
}

func TestEncodeJSON(t *testing.T) {
	stdout, _, err := execute(t, "", "--json", "--tag", "TAG")
	if err != nil {
		t.Fatalf("--json --tag: %v", err)
	}
	var report valueReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if report.Tagged != "TAG~Ew" || report.Kind != "" || report.Checksum != "0x13" {
		t.Errorf("report = %+v", report)
	}
}

func TestRootUsageErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"--tag", "A", "--decode", "A~AE8"},
		{"--decode", "A~AE8", "stray"},
		{"--bogus"},
		{"inpsect"},
	}
	for _, args := range tests {
		_, _, err := execute(t, "", args...)
		var usage *cli.UsageError
		if !errors.As(err, &usage) {
			t.Errorf("args %q: error = %v, want *cli.UsageError", args, err)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if stdout != version.Info()+"\n" {
		t.Errorf("--version = %q, want %q", stdout, version.Info()+"\n")
	}

	stdout, _, err = execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(stdout, version.Info()) || !strings.Contains(stdout, "Platform:") {
		t.Errorf("version = %q", stdout)
	}
}

func TestStrictRegistry(t *testing.T) {
	path := writeConfig(t, `
registry:
  strict: true
  tags:
    - {namespace: test, name: short, tag: T}
`)

	stdout, _, err := execute(t, "", "--config", path, "-d", "T~MTIzZw")
	if err != nil {
		t.Fatalf("decode registered tag: %v", err)
	}
	if stdout != "123" {
		t.Errorf("decode = %q, want %q", stdout, "123")
	}

	_, _, err = execute(t, "", "--config", path, "-d", "KEY~cHVibGljIGtleSBiaXRzCg")
	if !errors.Is(err, errUnregisteredTag) {
		t.Errorf("decode unregistered tag: error = %v, want errUnregisteredTag", err)
	}

	_, _, err = execute(t, "payload", "--config", path, "--tag", "UNKNOWN")
	if !errors.Is(err, errUnregisteredTag) {
		t.Errorf("encode unregistered tag: error = %v, want errUnregisteredTag", err)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	path := writeConfig(t, "output:\n  newline: false\n")

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvironmentVariable, path)
	streams := Streams{In: strings.NewReader(""), Out: &stdout, Err: &stderr}
	if err := Root(streams).Execute([]string{"--tag", "TAG"}); err != nil {
		t.Fatalf("--tag: %v", err)
	}
	if stdout.String() != "TAG~Ew" {
		t.Errorf("output = %q, want %q without newline", stdout.String(), "TAG~Ew")
	}
}

func TestBadConfigFails(t *testing.T) {
	path := writeConfig(t, "log:\n  level: shouting\n")
	_, _, err := execute(t, "", "--config", path, "--tag", "X")
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Errorf("error = %v, want a log.level validation error", err)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, stderr, err := execute(t, "", "--verbose", "--tag", "VERKEY")
	if err != nil {
		t.Fatalf("--verbose --tag: %v", err)
	}
	// Buffers are not terminals, so the log is JSON lines.
	var sawRecognized bool
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		if record["msg"] == "tag recognized" && record["kind"] == "crypto/verifying-key" {
			sawRecognized = true
		}
	}
	if !sawRecognized {
		t.Errorf("stderr missing the tag recognized record:\n%s", stderr)
	}

	_, stderr, err = execute(t, "", "--tag", "VERKEY")
	if err != nil {
		t.Fatalf("--tag: %v", err)
	}
	if stderr != "" {
		t.Errorf("default log level wrote to stderr: %q", stderr)
	}
}
