// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pathresolver resolves filesystem paths from a declarative schema
// of named path nodes.
//
// A schema is a tree (or forest) of PathItem values, each contributing a
// template fragment such as "shots/{shot}/{task}" to its position in the
// tree. A node's full path is the concatenation of its own template with
// every ancestor's template, joined by "/". Placeholders in a template are
// either typed through a Resolver registered by name (see IntegerResolver
// and StringResolver) or left as free-form strings.
//
// Given a Config built from a resolver map and a slice of PathItem values,
// the package exposes the bidirectional operations between field maps and
// paths: GetPath and GetFields convert between a node's fields and its
// path, GetKey identifies which node a path belongs to, FindPaths expands
// a partially bound node against the real filesystem, and GetWorkspace and
// CreateWorkspace operate over the schema as a whole to enumerate or
// materialize a fully resolvable project layout.
package pathresolver
