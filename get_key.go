// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

// GetKey attempts get_fields against path for every node in schema
// declaration order, and returns the key of the first node whose match also
// agrees with every field explicitly provided in fields (by equality after
// parsing). A provided field that is not one of the candidate node's
// placeholders imposes no constraint. Returns NoMatchError if no node
// matches.
func GetKey(config *Config, path string, fields map[string]Value) (string, error) {
	for _, key := range config.Keys() {
		matched, err := GetFields(config, key, path)
		if err != nil {
			continue
		}

		agrees := true
		for name, want := range fields {
			got, ok := matched[name]
			if !ok {
				continue
			}
			if !got.Equal(want) {
				agrees = false
				break
			}
		}
		if agrees {
			return key, nil
		}
	}
	return "", &NoMatchError{}
}
