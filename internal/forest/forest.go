// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package forest

import (
	"github.com/pkg/errors"

	itemplate "github.com/scott-wilson/pathresolver/internal/template"
)

// DuplicateKeyError is returned when two nodes declare the same key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return "duplicate key " + e.Key
}

// UnknownParentError is returned when a node's parent key does not refer to
// any declared node.
type UnknownParentError struct {
	Key       string
	ParentKey string
}

func (e *UnknownParentError) Error() string {
	return "node " + e.Key + " references unknown parent " + e.ParentKey
}

// AncestorCycleError is returned when the parent graph is not acyclic.
type AncestorCycleError struct {
	Key string
}

func (e *AncestorCycleError) Error() string {
	return "ancestor cycle detected at node " + e.Key
}

// UnknownKeyError is returned when a requested key does not exist in the
// forest.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return "unknown key " + e.Key
}

// entry is a Node paired with its parsed template and computed chain.
type entry struct {
	node     Node
	template *itemplate.Template
	chain    []string // keys from root to this node, inclusive
	children []string // direct children keys, in declaration order
}

// Forest is the validated, immutable composition of a schema's path items
// into a forest of named nodes.
type Forest struct {
	order   []string // declaration order of keys
	entries map[string]*entry
}

// New validates nodes and returns the composed Forest. Validation checks key
// uniqueness, parent existence, acyclicity, and that every template string
// parses.
func New(nodes []Node) (*Forest, error) {
	f := &Forest{
		order:   make([]string, 0, len(nodes)),
		entries: make(map[string]*entry, len(nodes)),
	}

	for _, n := range nodes {
		if _, exists := f.entries[n.Key]; exists {
			return nil, &DuplicateKeyError{Key: n.Key}
		}
		tmpl, err := itemplate.Parse(n.Template)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template for node %q", n.Key)
		}
		f.entries[n.Key] = &entry{node: n, template: tmpl}
		f.order = append(f.order, n.Key)
	}

	for _, key := range f.order {
		e := f.entries[key]
		if e.node.ParentKey == "" {
			continue
		}
		parent, ok := f.entries[e.node.ParentKey]
		if !ok {
			return nil, &UnknownParentError{Key: key, ParentKey: e.node.ParentKey}
		}
		parent.children = append(parent.children, key)
	}

	for _, key := range f.order {
		if _, err := f.chainOf(key); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// chainOf computes and caches the root-to-node chain of keys for key,
// detecting cycles via a bounded walk.
func (f *Forest) chainOf(key string) ([]string, error) {
	if e := f.entries[key]; e.chain != nil {
		return e.chain, nil
	}

	var chain []string
	visited := make(map[string]struct{})
	cur := key
	for {
		if _, seen := visited[cur]; seen {
			return nil, &AncestorCycleError{Key: key}
		}
		visited[cur] = struct{}{}
		chain = append([]string{cur}, chain...)
		e, ok := f.entries[cur]
		if !ok {
			return nil, &UnknownParentError{Key: key, ParentKey: cur}
		}
		if e.node.ParentKey == "" {
			break
		}
		cur = e.node.ParentKey
	}

	f.entries[key].chain = chain
	return chain, nil
}

// Keys returns all node keys in declaration order.
func (f *Forest) Keys() []string {
	keys := make([]string, len(f.order))
	copy(keys, f.order)
	return keys
}

// Node returns the Node for key, or UnknownKeyError if key was not
// declared.
func (f *Forest) Node(key string) (Node, error) {
	e, ok := f.entries[key]
	if !ok {
		return Node{}, &UnknownKeyError{Key: key}
	}
	return e.node, nil
}

// Chain returns the ordered list of Nodes from a root to key, inclusive.
func (f *Forest) Chain(key string) ([]Node, error) {
	e, ok := f.entries[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	chain := make([]Node, len(e.chain))
	for i, k := range e.chain {
		chain[i] = f.entries[k].node
	}
	return chain, nil
}

// Children returns the direct children of key, in declaration order.
func (f *Forest) Children(key string) []string {
	e, ok := f.entries[key]
	if !ok {
		return nil
	}
	children := make([]string, len(e.children))
	copy(children, e.children)
	return children
}

// Template returns the parsed template for key.
func (f *Forest) Template(key string) (*itemplate.Template, error) {
	e, ok := f.entries[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	return e.template, nil
}

// FullTemplate returns the joined template of key's entire chain: ancestor
// templates concatenated with "/", skipping empty templates.
func (f *Forest) FullTemplate(key string) (*itemplate.Template, error) {
	chainKeys, err := f.chainKeys(key)
	if err != nil {
		return nil, err
	}
	templates := make([]*itemplate.Template, len(chainKeys))
	for i, k := range chainKeys {
		templates[i] = f.entries[k].template
	}
	return itemplate.Join(templates...), nil
}

func (f *Forest) chainKeys(key string) ([]string, error) {
	e, ok := f.entries[key]
	if !ok {
		return nil, &UnknownKeyError{Key: key}
	}
	return e.chain, nil
}

// RequiredFields returns the union of placeholder names over key's full
// template.
func (f *Forest) RequiredFields(key string) ([]string, error) {
	full, err := f.FullTemplate(key)
	if err != nil {
		return nil, err
	}
	return full.PlaceholderNames(), nil
}

// Descendants returns all transitive descendant keys of key (not including
// key itself), in a parent-before-child, declaration-order walk.
func (f *Forest) Descendants(key string) []string {
	var out []string
	var walk func(string)
	walk = func(k string) {
		for _, c := range f.Children(k) {
			out = append(out, c)
			walk(c)
		}
	}
	walk(key)
	return out
}
