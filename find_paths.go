// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"encoding/hex"
	"os"
	"path"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	itemplate "github.com/scott-wilson/pathresolver/internal/template"
)

// pathComponent is one "/"-delimited segment of a chain's full template,
// after substituting bound placeholders from partial_fields. A literal
// component is joined directly; a dynamic component drives a readdir at
// that depth, filtered by pattern.
type pathComponent struct {
	dynamic bool
	literal string
	pattern *regexp.Regexp
}

// buildPathComponents splits key's full template into per-path-component
// patterns, substituting any placeholder present in partial with its
// formatted literal value and leaving the rest as a regex fragment. A name
// in partial that is not one of key's placeholders is silently ignored; it
// imposes no constraint on this node's chain. Callers that must treat such a
// name as an error (FindPaths's "unknown field" contract) validate it
// themselves before calling this.
func buildPathComponents(config *Config, key string, partial map[string]Value) ([]pathComponent, error) {
	full, err := config.forest.FullTemplate(key)
	if err != nil {
		return nil, err
	}

	var components []pathComponent
	var literalBuf strings.Builder
	var regexBuf strings.Builder
	dynamic := false

	flush := func() {
		if dynamic {
			re, compileErr := regexp.Compile("^" + regexBuf.String() + "$")
			if compileErr == nil {
				components = append(components, pathComponent{dynamic: true, pattern: re})
			}
		} else {
			components = append(components, pathComponent{literal: literalBuf.String()})
		}
		literalBuf.Reset()
		regexBuf.Reset()
		dynamic = false
	}

	for _, seg := range full.Segments {
		if seg.Kind == itemplate.SegmentLiteral {
			parts := strings.Split(seg.Literal, "/")
			for i, p := range parts {
				literalBuf.WriteString(p)
				regexBuf.WriteString(regexp.QuoteMeta(p))
				if i < len(parts)-1 {
					flush()
				}
			}
			continue
		}

		value, bound := partial[seg.Name]
		if bound {
			str, err := itemplate.FormatValue(seg.Name, value, config.resolvers)
			if err != nil {
				return nil, err
			}
			literalBuf.WriteString(str)
			regexBuf.WriteString(regexp.QuoteMeta(str))
			continue
		}

		dynamic = true
		regexBuf.WriteString("(?:" + itemplate.MatchRegexFragment(seg.Name, config.resolvers) + ")")
	}
	flush()

	return components, nil
}

// FindPaths produces every existing filesystem path matching key's chain
// template when some placeholders are left unbound in partial. Unbound
// placeholders drive a readdir at their path depth, filtered by the
// placeholder's match regex; bound placeholders and literal text are
// joined directly. Non-existent intermediate directories silently prune
// the branch rather than erroring.
func FindPaths(config *Config, key string, partial map[string]Value) ([]string, error) {
	full, err := config.forest.FullTemplate(key)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{})
	for _, n := range full.PlaceholderNames() {
		allowed[n] = struct{}{}
	}
	for name := range partial {
		if _, ok := allowed[name]; !ok {
			return nil, &UnknownFieldError{Name: name}
		}
	}

	components, err := buildPathComponents(config, key, partial)
	if err != nil {
		return nil, err
	}

	current := []string{""}
	for _, comp := range components {
		var next []string
		for _, p := range current {
			if !comp.dynamic {
				next = append(next, path.Join(p, comp.literal))
				continue
			}

			dir := p
			if dir == "" {
				dir = "."
			}
			entries, readErr := os.ReadDir(dir)
			if readErr != nil {
				// Non-existent (or unreadable) intermediate directory prunes this
				// branch; it is not an error.
				continue
			}
			for _, e := range entries {
				if comp.pattern.MatchString(e.Name()) {
					next = append(next, path.Join(p, e.Name()))
				}
			}
		}
		current = next
	}

	results := make([]string, 0, len(current))
	seen := make(map[string]struct{}, len(current))
	for _, candidate := range current {
		if _, err := os.Lstat(candidate); err != nil {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		results = append(results, candidate)
	}
	return results, nil
}

// FindPathsCacheKey derives a stable digest for a (key, partial) FindPaths
// call, letting a host memoize readdir-heavy lookups across repeated calls
// with the same arguments. Field names are sorted before hashing so
// iteration order over partial never affects the digest.
func FindPathsCacheKey(key string, partial map[string]Value) string {
	names := make([]string, 0, len(partial))
	for name := range partial {
		names = append(names, name)
	}
	sort.Strings(names)

	h, _ := blake2b.New256(nil)
	_, _ = h.Write([]byte(key))
	for _, name := range names {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(name))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(partial[name].String()))
	}
	return hex.EncodeToString(h.Sum(nil))
}
