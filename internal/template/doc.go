// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package template parses path template strings into literal/placeholder
// segment sequences, and provides the placeholder resolver model (typed
// formatters/parsers for field values) along with the regex machinery used
// to both format and pattern-match templates.
package template
