// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rootedConfig builds a two-node schema rooted at an opaque {root} extra
// field, mirroring the fixture used across the package's workspace tests:
// "{root}/path/to/{int}/{str}_{other}".
func rootedConfig(t *testing.T) *Config {
	t.Helper()
	str, err := NewStringResolver(`\w+?`)
	assert.Nil(t, err)

	cfg, err := NewConfig(
		map[string]Resolver{
			"int": NewIntegerResolver(3),
			"str": str,
		},
		[]PathItem{
			{Key: "root", Template: "{root}"},
			{Key: "path", Template: "path/to/{int}/{str}_{other}", ParentKey: "root"},
		},
	)
	assert.Nil(t, err)
	return cfg
}

func TestFindPaths(t *testing.T) {
	tmp := t.TempDir()
	cfg := rootedConfig(t)

	var want []string
	for _, n := range []string{"000", "001", "002"} {
		dir := filepath.Join(tmp, "path", "to", n, "test_other_test")
		assert.Nil(t, os.MkdirAll(dir, 0o755))
		want = append(want, filepath.ToSlash(dir))
	}
	// A decoy that does not match the bound str/other fields.
	assert.Nil(t, os.MkdirAll(filepath.Join(tmp, "path", "to", "003", "nope_nope"), 0o755))

	got, err := FindPaths(cfg, "path", map[string]Value{
		"root":  NewStringValue(tmp),
		"str":   NewStringValue("test"),
		"other": NewStringValue("other_test"),
	})
	assert.Nil(t, err)

	sort.Strings(got)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestFindPathsUnknownField(t *testing.T) {
	cfg := rootedConfig(t)
	_, err := FindPaths(cfg, "path", map[string]Value{"nonexistent": NewStringValue("x")})
	assert.IsType(t, &UnknownFieldError{}, err)
}

func TestFindPathsPrunesNonExistentIntermediateDirectory(t *testing.T) {
	cfg := rootedConfig(t)
	got, err := FindPaths(cfg, "path", map[string]Value{
		"root": NewStringValue(filepath.Join(t.TempDir(), "does-not-exist")),
	})
	assert.Nil(t, err)
	assert.Empty(t, got)
}

func TestFindPathsCacheKeyStableUnderFieldOrder(t *testing.T) {
	a := FindPathsCacheKey("path", map[string]Value{"str": NewStringValue("x"), "other": NewStringValue("y")})
	b := FindPathsCacheKey("path", map[string]Value{"other": NewStringValue("y"), "str": NewStringValue("x")})
	assert.Equal(t, a, b)

	c := FindPathsCacheKey("path", map[string]Value{"str": NewStringValue("x")})
	assert.NotEqual(t, a, c)
}
