// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tags is a registry of known tags: which short tag string
// names which kind of value, grouped by namespace.
//
// Tags are just strings on the wire. The registry exists so that tools
// can explain a tag ("VERKEY" is crypto/verifying-key), refuse tags
// nobody has declared (strict mode in the CLI), and catch two
// components claiming the same tag for different things. [Default]
// returns a registry preloaded with the built-in tag set; config files
// can add more.
package tags
