// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import itemplate "github.com/scott-wilson/pathresolver/internal/template"

// GetFields full-matches path against key's chain regex and returns the
// reconciled field map, parsed through each placeholder's registered
// resolver (or kept as a string for an extra field).
func GetFields(config *Config, key string, path string) (map[string]Value, error) {
	full, err := config.forest.FullTemplate(key)
	if err != nil {
		return nil, err
	}
	compiled, err := itemplate.BuildRegex(full, config.resolvers)
	if err != nil {
		return nil, err
	}
	return compiled.Match(path, config.resolvers)
}
