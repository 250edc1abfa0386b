// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import itemplate "github.com/scott-wilson/pathresolver/internal/template"

// GetPath formats key's full template (the concatenation of key's chain,
// slash-joined) against fields and returns the resulting path string.
func GetPath(config *Config, key string, fields map[string]Value) (string, error) {
	full, err := config.forest.FullTemplate(key)
	if err != nil {
		return "", err
	}
	return itemplate.Format(full, fields, config.resolvers)
}
