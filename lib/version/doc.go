// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the tb64 binary.
//
// Release builds inject [Version], [GitCommit], [GitDirty], and
// [BuildTime] with -ldflags -X:
//
//	go build -ldflags "-X github.com/bureau-foundation/tb64/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// When GitCommit is not injected, the VCS stamp that the go command
// embeds in module builds is used instead, so `go install` binaries
// still report their revision.
package version
