// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// placeholderAST is the parsed form of a "{name}" span.
type placeholderAST struct {
	Name string `parser:"'{' @Ident '}'"`
}

// segmentAST is either a literal run of characters or a placeholder.
type segmentAST struct {
	Literal     *string          `parser:"  @Literal"`
	Placeholder *placeholderAST `parser:"| @@"`
}

// templateAST is the parsed form of an entire template string.
type templateAST struct {
	Segments []segmentAST `parser:"@@*"`
}

// Parser is a BNF-based template syntax parser using a stateful lexer.
type Parser struct {
	parser *participle.Parser[templateAST]
}

// NewParser creates and returns a new Parser.
func NewParser() (*Parser, error) {
	l, err := lexer.New(
		lexer.Rules{
			"Root": {
				{Name: "Open", Pattern: `{`, Action: lexer.Push("Bind")},
				{Name: "Literal", Pattern: `[^{}]+`},
			},
			"Bind": {
				{Name: "Ident", Pattern: `\w+`},
				{Name: "Close", Pattern: `}`, Action: lexer.Pop()},
			},
		},
	)
	if err != nil {
		return nil, errors.Wrap(err, "new lexer")
	}

	parser, err := participle.Build[templateAST](
		participle.Lexer(l),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, errors.Wrap(err, "build parser")
	}

	return &Parser{parser: parser}, nil
}

// Parse parses raw into a Template.
func (p *Parser) Parse(raw string) (*Template, error) {
	ast, err := p.parser.ParseString("", raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse template %q", raw)
	}

	if len(ast.Segments) == 0 {
		return &Template{Raw: raw, Segments: nil}, nil
	}

	segments := make([]Segment, 0, len(ast.Segments))
	for _, s := range ast.Segments {
		switch {
		case s.Literal != nil:
			segments = append(segments, Segment{Kind: SegmentLiteral, Literal: *s.Literal})
		case s.Placeholder != nil:
			segments = append(segments, Segment{Kind: SegmentPlaceholder, Name: s.Placeholder.Name})
		default:
			// Unreachable per the grammar: every segmentAST has exactly one branch set.
			return nil, errors.Errorf("empty segment in template %q", raw)
		}
	}

	return &Template{Raw: raw, Segments: segments}, nil
}

// defaultParser is shared by package-level Parse, since Parser holds no
// mutable state once built.
var defaultParser = mustNewParser()

func mustNewParser() *Parser {
	p, err := NewParser()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses raw using a package-level default Parser.
func Parse(raw string) (*Template, error) {
	return defaultParser.Parse(raw)
}
