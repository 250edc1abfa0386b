// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import "fmt"

// Kind discriminates the variants of Value.
type Kind int8

const (
	KindString Kind = iota
	KindInteger
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// Value is a template placeholder value, tagged as either a string or an
// integer. The zero Value is the empty string.
type Value struct {
	kind   Kind
	str    string
	number int64
}

// String returns a Value holding a string.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Integer returns a Value holding an integer.
func Integer(i int64) Value {
	return Value{kind: KindInteger, number: i}
}

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsString reports whether v holds a string.
func (v Value) IsString() bool {
	return v.kind == KindString
}

// IsInteger reports whether v holds an integer.
func (v Value) IsInteger() bool {
	return v.kind == KindInteger
}

// StringValue returns the string held by v and true, or "" and false if v
// does not hold a string.
func (v Value) StringValue() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// IntegerValue returns the integer held by v and true, or 0 and false if v
// does not hold an integer.
func (v Value) IntegerValue() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.number, true
}

// Equal reports whether v and other hold the same kind and value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindString {
		return v.str == other.str
	}
	return v.number == other.number
}

// String implements fmt.Stringer for debugging and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger:
		return fmt.Sprintf("%d", v.number)
	default:
		return ""
	}
}
