// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tags

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bureau-foundation/tb64/lib/tb64"
)

// Entry declares one tag.
type Entry struct {
	// Namespace groups related tags ("crypto", "ledger").
	Namespace string `json:"namespace" yaml:"namespace"`

	// Name is the human-readable kind, unique within its namespace
	// ("verifying-key").
	Name string `json:"name" yaml:"name"`

	// Tag is the wire tag ("VERKEY"). It must be a safe tag and is
	// unique across the whole registry.
	Tag string `json:"tag" yaml:"tag"`
}

// QualifiedName returns "namespace/name".
func (e Entry) QualifiedName() string {
	return e.Namespace + "/" + e.Name
}

// Validate checks that the entry is complete and its tag is safe.
func (e Entry) Validate() error {
	var errs []error
	if e.Namespace == "" {
		errs = append(errs, errors.New("namespace is required"))
	} else if strings.Contains(e.Namespace, "/") {
		errs = append(errs, fmt.Errorf("namespace %q must not contain '/'", e.Namespace))
	}
	if e.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if e.Tag == "" {
		errs = append(errs, errors.New("tag is required"))
	} else if !tb64.IsSafeTag(e.Tag) {
		errs = append(errs, fmt.Errorf("%w: %q contains characters outside A-Z, a-z, 0-9, '-', '_'", tb64.ErrInvalidTag, e.Tag))
	}
	return errors.Join(errs...)
}

var (
	// ErrDuplicateTag is returned by Register when the tag is already
	// registered under a different name.
	ErrDuplicateTag = errors.New("tag already registered")

	// ErrDuplicateName is returned by Register when the namespace/name
	// pair is already registered with a different tag.
	ErrDuplicateName = errors.New("name already registered")
)

// Registry maps tags to entries. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byTag  map[string]Entry
	byName map[string]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byTag:  make(map[string]Entry),
		byName: make(map[string]string),
	}
}

// Default returns a new registry holding the built-in tags.
func Default() *Registry {
	registry := New()
	for _, entry := range builtin {
		if err := registry.Register(entry); err != nil {
			panic(fmt.Sprintf("tags: built-in entry %s: %v", entry.QualifiedName(), err))
		}
	}
	return registry
}

// Register adds an entry. Registering an identical entry again is a
// no-op; reusing a tag or a namespace/name pair for something else is
// an error wrapping ErrDuplicateTag or ErrDuplicateName.
func (r *Registry) Register(entry Entry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid entry %s: %w", entry.QualifiedName(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byTag[entry.Tag]; ok {
		if existing == entry {
			return nil
		}
		return fmt.Errorf("%w: %q is %s, cannot also be %s",
			ErrDuplicateTag, entry.Tag, existing.QualifiedName(), entry.QualifiedName())
	}
	if tag, ok := r.byName[entry.QualifiedName()]; ok {
		return fmt.Errorf("%w: %s is %q, cannot also be %q",
			ErrDuplicateName, entry.QualifiedName(), tag, entry.Tag)
	}

	r.byTag[entry.Tag] = entry
	r.byName[entry.QualifiedName()] = entry.Tag
	return nil
}

// Lookup returns the entry for tag.
func (r *Registry) Lookup(tag string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.byTag[tag]
	return entry, ok
}

// LookupName returns the entry registered as namespace/name.
func (r *Registry) LookupName(namespace, name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tag, ok := r.byName[namespace+"/"+name]
	if !ok {
		return Entry{}, false
	}
	return r.byTag[tag], true
}

// Entries returns every entry, sorted by namespace, then name.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.byTag))
	for _, entry := range r.byTag {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, compareEntries)
	return entries
}

// Namespace returns the entries in one namespace, sorted by name.
func (r *Registry) Namespace(namespace string) []Entry {
	var entries []Entry
	for _, entry := range r.Entries() {
		if entry.Namespace == namespace {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byTag)
}

func compareEntries(a, b Entry) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}
