// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWorkspacePartiallyResolvableIsEmpty(t *testing.T) {
	cfg := rootedConfig(t)
	got, err := GetWorkspace(cfg, map[string]Value{"root": NewStringValue("/tmp/x")})
	assert.Nil(t, err)
	assert.Empty(t, got)
}

func TestGetWorkspaceFullyResolvableExpandsRungs(t *testing.T) {
	cfg := rootedConfig(t)
	fields := map[string]Value{
		"root":  NewStringValue("/tmp/x"),
		"int":   NewIntValue(3),
		"str":   NewStringValue("test"),
		"other": NewStringValue("other_test"),
	}

	got, err := GetWorkspace(cfg, fields)
	assert.Nil(t, err)
	assert.Len(t, got, 5)

	wantPaths := []string{
		"/tmp/x",
		"/tmp/x/path",
		"/tmp/x/path/to",
		"/tmp/x/path/to/003",
		"/tmp/x/path/to/003/test_other_test",
	}
	for i, item := range got {
		assert.Equal(t, wantPaths[i], item.Path)
	}
	assert.Equal(t, "root", got[0].Key)
	assert.Equal(t, "", got[1].Key)
	assert.Equal(t, "", got[2].Key)
	assert.Equal(t, "", got[3].Key)
	assert.Equal(t, "path", got[4].Key)
}

// multiRootDeferredConfig builds the fixture used to exercise deferred-node
// inclusion: a shared root with two children, one of which has a deferred
// leaf with no qualifying descendant and a deferred node that does have
// one.
func multiRootDeferredConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(nil, []PathItem{
		{Key: "root", Template: "root"},
		{Key: "child1", Template: "{c1}", ParentKey: "root"},
		{Key: "child2", Template: "{c2}", ParentKey: "root"},
		{Key: "deferred_leaf", Template: "leaf", ParentKey: "child2", Deferred: true},
		{Key: "deferred_mid", Template: "mid", ParentKey: "child2", Deferred: true},
		{Key: "mid_child", Template: "{mc}", ParentKey: "deferred_mid"},
	})
	assert.Nil(t, err)
	return cfg
}

func TestCreateWorkspaceOrderAndDeferredInclusion(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	fields := map[string]Value{
		"c1": NewStringValue("one"),
		"c2": NewStringValue("two"),
		"mc": NewStringValue("three"),
	}

	var dispatched []string
	err := CreateWorkspace(context.Background(), cfg, fields, nil, func(_ context.Context, _ *Config, _ map[string]Value, item ResolvedPathItem) error {
		dispatched = append(dispatched, item.Key)
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, []string{"root", "child1", "child2", "deferred_mid", "mid_child"}, dispatched)
}

func TestCreateWorkspaceNotFullyResolvableNoOp(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	called := false
	err := CreateWorkspace(context.Background(), cfg, map[string]Value{"c1": NewStringValue("one")}, nil, func(context.Context, *Config, map[string]Value, ResolvedPathItem) error {
		called = true
		return nil
	})
	assert.Nil(t, err)
	assert.False(t, called)
}

func TestCreateWorkspaceCancelledContext(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	fields := map[string]Value{
		"c1": NewStringValue("one"),
		"c2": NewStringValue("two"),
		"mc": NewStringValue("three"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := CreateWorkspace(ctx, cfg, fields, nil, func(context.Context, *Config, map[string]Value, ResolvedPathItem) error {
		called = true
		return nil
	})
	assert.NotNil(t, err)
	assert.False(t, called)
}

func TestCreateWorkspaceCallbackErrorAbortsAndWraps(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	fields := map[string]Value{
		"c1": NewStringValue("one"),
		"c2": NewStringValue("two"),
		"mc": NewStringValue("three"),
	}

	boom := errors.New("disk full")
	var dispatched []string
	err := CreateWorkspace(context.Background(), cfg, fields, nil, func(_ context.Context, _ *Config, _ map[string]Value, item ResolvedPathItem) error {
		dispatched = append(dispatched, item.Key)
		if item.Key == "child1" {
			return boom
		}
		return nil
	})

	assert.Equal(t, []string{"root", "child1"}, dispatched)
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "child1", ioErr.Key)
	assert.ErrorIs(t, err, boom)
}

func TestCreateWorkspaceEffectiveFieldsMergeExtraMetadata(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	fields := map[string]Value{
		"c1": NewStringValue("one"),
		"c2": NewStringValue("two"),
		"mc": NewStringValue("three"),
	}
	extra := map[string]Value{"c1": NewStringValue("overridden"), "extra_only": NewStringValue("x")}

	var gotFields map[string]Value
	err := CreateWorkspace(context.Background(), cfg, fields, extra, func(_ context.Context, _ *Config, effective map[string]Value, item ResolvedPathItem) error {
		if item.Key == "root" {
			gotFields = effective
		}
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, NewStringValue("overridden"), gotFields["c1"])
	assert.Equal(t, NewStringValue("x"), gotFields["extra_only"])
}

// TestCreateWorkspace_MultiRootDeferredMetadata mirrors the two-root forest
// fixture from the original implementation's create_workspace regression
// test: two independent roots, one carrying a deferred descendant with no
// qualifying descendant of its own (never included) alongside a sibling
// deferred node that does have one (included), and a node carrying opaque
// metadata that the core must pass through without interpreting it.
func TestCreateWorkspace_MultiRootDeferredMetadata(t *testing.T) {
	cfg, err := NewConfig(nil, []PathItem{
		{Key: "art_root", Template: "art"},
		{Key: "game_root", Template: "game"},
		{Key: "art_asset", Template: "{asset}", ParentKey: "art_root"},
		{
			Key:       "art_asset_blend",
			Template:  "blend",
			ParentKey: "art_asset",
			Deferred:  true,
			Metadata:  map[string]any{"skip": true},
		},
		{
			Key:       "art_asset_cache",
			Template:  "cache",
			ParentKey: "art_asset",
			Deferred:  true,
			Metadata:  map[string]any{"purge_after_days": 7},
		},
		{Key: "art_asset_cache_file", Template: "{frame}", ParentKey: "art_asset_cache"},
	})
	assert.Nil(t, err)

	fields := map[string]Value{
		"asset": NewStringValue("hero"),
		"frame": NewStringValue("0001"),
	}

	var dispatched []string
	var blendDispatched bool
	var cacheMetadata map[string]any
	err = CreateWorkspace(context.Background(), cfg, fields, nil, func(_ context.Context, _ *Config, _ map[string]Value, item ResolvedPathItem) error {
		dispatched = append(dispatched, item.Key)
		switch item.Key {
		case "art_asset_blend":
			blendDispatched = true
		case "art_asset_cache":
			cacheMetadata = item.Metadata
		}
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, []string{"art_root", "game_root", "art_asset", "art_asset_cache", "art_asset_cache_file"}, dispatched)
	assert.False(t, blendDispatched)
	assert.Equal(t, map[string]any{"purge_after_days": 7}, cacheMetadata)
}

func TestCreateWorkspacePanicRecovered(t *testing.T) {
	cfg := multiRootDeferredConfig(t)
	fields := map[string]Value{
		"c1": NewStringValue("one"),
		"c2": NewStringValue("two"),
		"mc": NewStringValue("three"),
	}

	err := CreateWorkspace(context.Background(), cfg, fields, nil, func(context.Context, *Config, map[string]Value, ResolvedPathItem) error {
		panic("boom")
	})
	var ioErr *IOError
	assert.True(t, errors.As(err, &ioErr))
}
