// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetKey(t *testing.T) {
	cfg := sampleConfig(t)

	key, err := GetKey(cfg, "path/to/003/test_other_test", map[string]Value{
		"int":   NewIntValue(3),
		"str":   NewStringValue("test"),
		"other": NewStringValue("other_test"),
	})
	assert.Nil(t, err)
	assert.Equal(t, "path", key)
}

func TestGetKeyDisagreeingFieldExcludesNode(t *testing.T) {
	cfg := sampleConfig(t)

	_, err := GetKey(cfg, "path/to/003/test_other_test", map[string]Value{
		"int": NewIntValue(999),
	})
	assert.IsType(t, &NoMatchError{}, err)
}

func TestGetKeyNoMatch(t *testing.T) {
	cfg := sampleConfig(t)
	_, err := GetKey(cfg, "nowhere/at/all", nil)
	assert.IsType(t, &NoMatchError{}, err)
}

func TestGetKeyUnconstrainedFieldsStillMatch(t *testing.T) {
	cfg := sampleConfig(t)
	key, err := GetKey(cfg, "path/to/003/test_other_test", nil)
	assert.Nil(t, err)
	assert.Equal(t, "path", key)
}
