// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

// SegmentKind discriminates the two kinds of Segment.
type SegmentKind int8

const (
	SegmentLiteral SegmentKind = iota
	SegmentPlaceholder
)

// Segment is one piece of a parsed Template: either a literal run of
// characters or a named placeholder reference.
type Segment struct {
	Kind    SegmentKind
	Literal string // valid when Kind == SegmentLiteral
	Name    string // valid when Kind == SegmentPlaceholder
}

// Template is a template string parsed into an alternating sequence of
// literal and placeholder segments.
type Template struct {
	Raw      string
	Segments []Segment
}

// PlaceholderNames returns the distinct placeholder names referenced by t,
// in order of first appearance.
func (t *Template) PlaceholderNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(t.Segments))
	for _, s := range t.Segments {
		if s.Kind != SegmentPlaceholder {
			continue
		}
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		names = append(names, s.Name)
	}
	return names
}

// Empty reports whether t has no segments, i.e. its raw template was "".
func (t *Template) Empty() bool {
	return len(t.Segments) == 0
}

// Join concatenates templates with a literal "/" between each pair of
// non-empty templates. Empty templates contribute nothing and do not
// introduce an extra separator, per the chain-composition rule: ancestors
// with an empty template segment do not leave a stray slash in the
// composed path.
func Join(templates ...*Template) *Template {
	joined := &Template{}
	first := true
	for _, t := range templates {
		if t == nil || t.Empty() {
			continue
		}
		if !first {
			joined.Segments = append(joined.Segments, Segment{Kind: SegmentLiteral, Literal: "/"})
		}
		joined.Segments = append(joined.Segments, t.Segments...)
		first = false
	}
	return joined
}
