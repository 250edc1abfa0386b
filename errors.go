// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"fmt"

	"github.com/scott-wilson/pathresolver/internal/forest"
	itemplate "github.com/scott-wilson/pathresolver/internal/template"
)

// ConfigError is raised at Config construction when a node's parent key
// refers to no declared node or a template fails to parse. Duplicate keys
// and parent cycles are reported as DuplicateKeyError and AncestorCycleError
// instead.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

// UnknownKeyError is returned when a call references a key the Config's
// schema does not declare.
type UnknownKeyError = forest.UnknownKeyError

// DuplicateKeyError is returned at Config construction when two path items
// declare the same key.
type DuplicateKeyError = forest.DuplicateKeyError

// AncestorCycleError is returned at Config construction when the parent
// graph is not acyclic.
type AncestorCycleError = forest.AncestorCycleError

// MissingFieldError is returned when get_path's field map has no entry for
// a placeholder the target node's full template references.
type MissingFieldError = itemplate.MissingFieldError

// TypeMismatchError is returned when a supplied field's Value variant does
// not match what the placeholder's resolver (or, for an extra field, the
// string requirement) expects.
type TypeMismatchError = itemplate.TypeMismatchError

// FormatError is returned when a resolver rejects a value it was asked to
// format.
type FormatError = itemplate.FormatError

// ParseError is returned when a resolver fails to parse a path's captured
// substring.
type ParseError = itemplate.ParseError

// NoMatchError is returned when get_fields' path does not match the
// target node's chain regex at all, or get_key finds no matching node.
type NoMatchError = itemplate.NoMatchError

// AmbiguousMatchError is returned when the same placeholder name occurs
// more than once in a chain and the occurrences capture disagreeing
// values from the same path.
type AmbiguousMatchError = itemplate.AmbiguousMatchError

// UnknownFieldError is returned by find_paths when a partial field name is
// not a placeholder on the target node's chain.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q is not a placeholder on this node's chain", e.Name)
}

// IOError wraps a failure surfaced from the host's IO callback during
// create_workspace. The core forwards it unchanged aside from this
// wrapper, which lets callers use errors.As to recover the original cause.
type IOError struct {
	Key   string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io callback failed for node %q: %s", e.Key, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
