// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import "github.com/scott-wilson/pathresolver/internal/forest"

// Permission is an opaque permission hint the core never interprets; it is
// surfaced to the host's IO callback verbatim.
type Permission = forest.Permission

const (
	PermissionInherit   = forest.PermissionInherit
	PermissionReadOnly  = forest.PermissionReadOnly
	PermissionReadWrite = forest.PermissionReadWrite
)

// Owner is an opaque ownership hint the core never interprets; it is
// surfaced to the host's IO callback verbatim.
type Owner = forest.Owner

const (
	OwnerInherit = forest.OwnerInherit
	OwnerRoot    = forest.OwnerRoot
	OwnerProject = forest.OwnerProject
	OwnerUser    = forest.OwnerUser
)

// PathType describes what kind of filesystem entry a node represents. The
// core never creates files or directories itself; this is surfaced to the
// host's IO callback so it can decide how to materialize the node.
type PathType = forest.PathType

const (
	PathTypeDirectory    = forest.PathTypeDirectory
	PathTypeFile         = forest.PathTypeFile
	PathTypeFileTemplate = forest.PathTypeFileTemplate
)

// PathItem is one named node in a Config's schema.
type PathItem struct {
	// Key is the node's unique identifier within the schema.
	Key string
	// Template is the template string for this node alone (not including
	// ancestors), containing literals and "{name}" placeholders.
	Template string
	// ParentKey is the key of this node's parent, or "" if it is a root.
	ParentKey string
	// Permission is an opaque enum surfaced to the IO callback.
	Permission Permission
	// Owner is an opaque enum surfaced to the IO callback.
	Owner Owner
	// PathType says whether this node is a directory, file, or file
	// template.
	PathType PathType
	// Deferred marks a node that is materialized only if at least one
	// non-deferred descendant is also materialized.
	Deferred bool
	// Metadata is an opaque key->value mapping passed verbatim to the IO
	// callback.
	Metadata map[string]any
}
