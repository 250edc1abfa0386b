// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Resolver is a codec for one placeholder type. It formats a Value into its
// canonical string representation, parses a string back into a Value, and
// exposes an unanchored regex fragment that matches any string it can parse.
type Resolver interface {
	// Format returns the canonical string representation of value.
	Format(value Value) (string, error)
	// Parse is the inverse of Format.
	Parse(s string) (Value, error)
	// MatchRegex returns an unanchored regex fragment embeddable in a larger
	// path-level regex.
	MatchRegex() string
	// Kind returns the Value variant this resolver formats and parses.
	Kind() Kind
}

// IntegerResolver formats non-negative integers as decimal digits,
// zero-padded to at least Width characters.
type IntegerResolver struct {
	Width int
}

// NewIntegerResolver returns an IntegerResolver that zero-pads to width
// digits.
func NewIntegerResolver(width int) *IntegerResolver {
	return &IntegerResolver{Width: width}
}

func (r *IntegerResolver) Format(value Value) (string, error) {
	i, ok := value.IntegerValue()
	if !ok {
		return "", errors.Errorf("expected an integer value, got %s", value.Kind())
	}
	if i < 0 {
		return "", errors.Errorf("negative integer %d cannot be formatted", i)
	}
	s := strconv.FormatInt(i, 10)
	if len(s) < r.Width {
		s = strings.Repeat("0", r.Width-len(s)) + s
	}
	return s, nil
}

func (r *IntegerResolver) Parse(s string) (Value, error) {
	if s == "" || strings.ContainsAny(s, "+- ") {
		return Value{}, errors.Errorf("%q is not a valid non-negative integer", s)
	}
	if len(s) < r.Width {
		return Value{}, errors.Errorf("%q has fewer than %d digits", s, r.Width)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return Value{}, errors.Errorf("%q contains non-digit characters", s)
		}
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Value{}, errors.Wrapf(err, "parse integer %q", s)
	}
	return Integer(i), nil
}

func (r *IntegerResolver) MatchRegex() string {
	return `\d{` + strconv.Itoa(r.Width) + `,}`
}

func (r *IntegerResolver) Kind() Kind {
	return KindInteger
}

// StringResolver formats and parses strings that fully match a regular
// expression.
type StringResolver struct {
	pattern string
	full    *regexp.Regexp
}

// NewStringResolver compiles pattern and returns a StringResolver that
// accepts strings fully matching it.
func NewStringResolver(pattern string) (*StringResolver, error) {
	full, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "compile string resolver pattern %q", pattern)
	}
	return &StringResolver{pattern: pattern, full: full}, nil
}

func (r *StringResolver) Format(value Value) (string, error) {
	s, ok := value.StringValue()
	if !ok {
		return "", errors.Errorf("expected a string value, got %s", value.Kind())
	}
	if !r.full.MatchString(s) {
		return "", errors.Errorf("%q does not fully match pattern %q", s, r.pattern)
	}
	return s, nil
}

func (r *StringResolver) Parse(s string) (Value, error) {
	if !r.full.MatchString(s) {
		return Value{}, errors.Errorf("%q does not fully match pattern %q", s, r.pattern)
	}
	return String(s), nil
}

func (r *StringResolver) MatchRegex() string {
	return `(?:` + r.pattern + `)`
}

func (r *StringResolver) Kind() Kind {
	return KindString
}
