// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import "fmt"

// MissingFieldError is returned when a template placeholder has no entry in
// the supplied field map.
type MissingFieldError struct {
	Name string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Name)
}

// TypeMismatchError is returned when a supplied field's Value variant does
// not match what the placeholder's resolver expects.
type TypeMismatchError struct {
	Name     string
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Name, e.Expected, e.Got)
}

// FormatError is returned when a resolver rejects a value it was asked to
// format, e.g. a negative integer or a string that does not match its
// pattern.
type FormatError struct {
	Name   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format field %q: %s", e.Name, e.Reason)
}

// ParseError is returned when a resolver fails to parse a captured
// substring.
type ParseError struct {
	Name   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse field %q: %s", e.Name, e.Reason)
}

// AmbiguousMatchError is returned when the same placeholder name occurs
// more than once in a template and the occurrences capture disagreeing
// values from the same path.
type AmbiguousMatchError struct {
	Name string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match for field %q", e.Name)
}

// NoMatchError is returned when a path does not match a template's compiled
// regex at all.
type NoMatchError struct{}

func (e *NoMatchError) Error() string {
	return "no match"
}
