// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import "strings"

// FormatValue renders a single placeholder's value: the registered
// resolver's Format, or the value's raw string for an extra field with no
// registered resolver.
func FormatValue(name string, value Value, resolvers map[string]Resolver) (string, error) {
	resolver, hasResolver := resolvers[name]
	if !hasResolver {
		str, isString := value.StringValue()
		if !isString {
			return "", &TypeMismatchError{Name: name, Expected: "string", Got: value.Kind().String()}
		}
		return str, nil
	}

	if value.Kind() != resolver.Kind() {
		return "", &TypeMismatchError{Name: name, Expected: resolver.Kind().String(), Got: value.Kind().String()}
	}

	str, err := resolver.Format(value)
	if err != nil {
		return "", &FormatError{Name: name, Reason: err.Error()}
	}
	return str, nil
}

// Format renders t using fields, consulting resolvers for any placeholder
// that has one registered. Placeholders without a registered resolver (the
// "extra fields" of the resolver model) must hold a string Value, which is
// inserted literally.
func Format(t *Template, fields map[string]Value, resolvers map[string]Resolver) (string, error) {
	var buf strings.Builder
	for _, s := range t.Segments {
		if s.Kind == SegmentLiteral {
			buf.WriteString(s.Literal)
			continue
		}

		value, ok := fields[s.Name]
		if !ok {
			return "", &MissingFieldError{Name: s.Name}
		}

		str, err := FormatValue(s.Name, value, resolvers)
		if err != nil {
			return "", err
		}
		buf.WriteString(str)
	}
	return buf.String(), nil
}
