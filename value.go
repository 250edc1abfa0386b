// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import itemplate "github.com/scott-wilson/pathresolver/internal/template"

// Kind discriminates the variants of Value.
type Kind = itemplate.Kind

const (
	KindString  = itemplate.KindString
	KindInteger = itemplate.KindInteger
)

// Value is a template placeholder value: the tagged union of Integer(i64)
// and String(text) from the data model.
type Value = itemplate.Value

// NewStringValue returns a Value holding a string.
func NewStringValue(s string) Value {
	return itemplate.String(s)
}

// NewIntValue returns a Value holding an integer.
func NewIntValue(i int64) Value {
	return itemplate.Integer(i)
}

// Resolver is a typed codec for one placeholder: it formats a Value into
// its canonical string representation, parses a string back into a Value,
// and exposes an unanchored regex fragment matching anything it can parse.
//
// The core ships a closed set of resolvers (IntegerResolver, StringResolver)
// but a host may implement Resolver itself to register a custom placeholder
// type, per the core's extension point for polymorphic resolvers.
type Resolver = itemplate.Resolver

// IntegerResolver formats a non-negative integer using exactly Width-or-more
// digits, zero-padded to Width.
type IntegerResolver = itemplate.IntegerResolver

// NewIntegerResolver returns an IntegerResolver that zero-pads to width
// digits.
func NewIntegerResolver(width int) *IntegerResolver {
	return itemplate.NewIntegerResolver(width)
}

// StringResolver formats and parses strings that fully match pattern.
type StringResolver = itemplate.StringResolver

// NewStringResolver compiles pattern and returns a StringResolver.
func NewStringResolver(pattern string) (*StringResolver, error) {
	return itemplate.NewStringResolver(pattern)
}
