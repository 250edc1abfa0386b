// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// CompiledRegex is an anchored regex derived from a Template, along with a
// mapping from placeholder name to the (possibly several) capture group
// names that bind it.
type CompiledRegex struct {
	Regexp *regexp.Regexp
	Groups map[string][]string // placeholder name -> capture group names, in segment order
}

// MatchRegexFragment returns the unanchored fragment that matches name's
// placeholder: the registered resolver's fragment, or ".+?" for an extra
// field with no registered resolver.
func MatchRegexFragment(name string, resolvers map[string]Resolver) string {
	if resolver, ok := resolvers[name]; ok {
		return resolver.MatchRegex()
	}
	return `.+?`
}

// BuildRegex compiles an anchored ("^...$") regex matching t, with each
// placeholder occurrence wrapped in its own named capture group. Repeated
// occurrences of the same placeholder name get distinct group names; use
// CompiledRegex.Groups to reconcile them after a match.
func BuildRegex(t *Template, resolvers map[string]Resolver) (*CompiledRegex, error) {
	var buf strings.Builder
	buf.WriteString("^")
	groups := make(map[string][]string)
	counter := 0
	for _, s := range t.Segments {
		if s.Kind == SegmentLiteral {
			buf.WriteString(regexp.QuoteMeta(s.Literal))
			continue
		}

		groupName := fmt.Sprintf("p%d", counter)
		counter++
		groups[s.Name] = append(groups[s.Name], groupName)

		fragment := MatchRegexFragment(s.Name, resolvers)
		buf.WriteString("(?P<")
		buf.WriteString(groupName)
		buf.WriteString(">")
		buf.WriteString(fragment)
		buf.WriteString(")")
	}
	buf.WriteString("$")

	re, err := regexp.Compile(buf.String())
	if err != nil {
		return nil, errors.Wrapf(err, "compile regex for template %q", t.Raw)
	}
	return &CompiledRegex{Regexp: re, Groups: groups}, nil
}

// Match full-matches path against cr and, for every placeholder, reconciles
// its (possibly repeated) captures and invokes the resolver's Parse. A
// placeholder with no registered resolver is returned as a string Value
// verbatim. Returns NoMatchError if path does not match at all, and
// AmbiguousMatchError if a placeholder's repeated captures disagree.
func (cr *CompiledRegex) Match(path string, resolvers map[string]Resolver) (map[string]Value, error) {
	submatches := cr.Regexp.FindStringSubmatch(path)
	if submatches == nil {
		return nil, &NoMatchError{}
	}
	names := cr.Regexp.SubexpNames()

	captured := make(map[string]string, len(names))
	for i, n := range names {
		if n == "" {
			continue
		}
		captured[n] = submatches[i]
	}

	fields := make(map[string]Value, len(cr.Groups))
	for name, groupNames := range cr.Groups {
		var raw string
		for i, gn := range groupNames {
			v := captured[gn]
			if i == 0 {
				raw = v
				continue
			}
			if v != raw {
				return nil, &AmbiguousMatchError{Name: name}
			}
		}

		resolver, ok := resolvers[name]
		if !ok {
			fields[name] = String(raw)
			continue
		}

		value, err := resolver.Parse(raw)
		if err != nil {
			return nil, &ParseError{Name: name, Reason: err.Error()}
		}
		fields[name] = value
	}
	return fields, nil
}
