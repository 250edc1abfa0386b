// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package forest composes path items into a forest of named nodes linked by
// parent key, validates the uniqueness and acyclicity invariants the
// composition must satisfy, and computes the per-node chain and full
// template the resolver core and workspace engine build on.
package forest

// Permission is an opaque permission hint the core never interprets.
type Permission int8

const (
	PermissionInherit Permission = iota
	PermissionReadOnly
	PermissionReadWrite
)

// Owner is an opaque ownership hint the core never interprets.
type Owner int8

const (
	OwnerInherit Owner = iota
	OwnerRoot
	OwnerProject
	OwnerUser
)

// PathType describes what kind of filesystem entry a node represents.
type PathType int8

const (
	PathTypeDirectory PathType = iota
	PathTypeFile
	PathTypeFileTemplate
)

// Node is one path item in the forest: a template string, an optional
// parent, and the opaque metadata the core carries but never interprets.
type Node struct {
	Key        string
	Template   string
	ParentKey  string // empty denotes a root
	Permission Permission
	Owner      Owner
	PathType   PathType
	Deferred   bool
	Metadata   map[string]any
}
