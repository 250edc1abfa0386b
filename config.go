// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"github.com/scott-wilson/pathresolver/internal/forest"
)

// Config is the immutable composition of a placeholder resolver map and a
// schema of path items. It is constructed once and shared freely across
// concurrent callers; none of its methods mutate it.
type Config struct {
	resolvers map[string]Resolver
	forest    *forest.Forest
}

// NewConfig validates resolvers and items and returns the composed Config.
// Validation enforces: key uniqueness, parent-key existence, an acyclic
// parent graph, and that every template string parses. Any violation is
// returned as ConfigError, except key collisions (DuplicateKeyError) and
// parent cycles (AncestorCycleError), which carry their own error kinds.
func NewConfig(resolvers map[string]Resolver, items []PathItem) (*Config, error) {
	nodes := make([]forest.Node, len(items))
	for i, it := range items {
		nodes[i] = forest.Node{
			Key:        it.Key,
			Template:   it.Template,
			ParentKey:  it.ParentKey,
			Permission: it.Permission,
			Owner:      it.Owner,
			PathType:   it.PathType,
			Deferred:   it.Deferred,
			Metadata:   it.Metadata,
		}
	}

	f, err := forest.New(nodes)
	if err != nil {
		switch err.(type) {
		case *forest.DuplicateKeyError, *forest.AncestorCycleError:
			return nil, err
		default:
			return nil, &ConfigError{Reason: err.Error()}
		}
	}

	resolverCopy := make(map[string]Resolver, len(resolvers))
	for k, v := range resolvers {
		resolverCopy[k] = v
	}

	return &Config{resolvers: resolverCopy, forest: f}, nil
}

// Keys returns all node keys in schema declaration order.
func (c *Config) Keys() []string {
	return c.forest.Keys()
}

// PathItem returns the host-declared PathItem for key.
func (c *Config) PathItem(key string) (PathItem, error) {
	n, err := c.forest.Node(key)
	if err != nil {
		return PathItem{}, err
	}
	return PathItem{
		Key:        n.Key,
		Template:   n.Template,
		ParentKey:  n.ParentKey,
		Permission: n.Permission,
		Owner:      n.Owner,
		PathType:   n.PathType,
		Deferred:   n.Deferred,
		Metadata:   n.Metadata,
	}, nil
}
