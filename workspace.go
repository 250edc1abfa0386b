// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"context"
	"path"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/scott-wilson/pathresolver/internal/metrics"
)

// ResolvedPathItem is a node paired with its fully concatenated absolute
// path string. Entries synthesized by GetWorkspace for an ancestor prefix
// that is not itself a declared node carry an empty Key.
type ResolvedPathItem struct {
	Key        string
	Path       string
	Permission Permission
	Owner      Owner
	PathType   PathType
	Deferred   bool
	Metadata   map[string]any
}

// IOCallback is the sole filesystem actor driven by CreateWorkspace. It
// receives the Config, the effective field map, and the node to
// materialize, and may suspend by blocking on ctx or by doing its own I/O;
// CreateWorkspace awaits it before dispatching the next node.
type IOCallback func(ctx context.Context, config *Config, fields map[string]Value, item ResolvedPathItem) error

// isFullyResolvable reports whether every placeholder in key's full
// template has an entry in fields.
func isFullyResolvable(config *Config, key string, fields map[string]Value) (bool, error) {
	required, err := config.forest.RequiredFields(key)
	if err != nil {
		return false, err
	}
	for _, name := range required {
		if _, ok := fields[name]; !ok {
			return false, nil
		}
	}
	return true, nil
}

// resolvableNodes returns the schema's node keys, in declaration order,
// together with whether every node in the schema is fully resolvable given
// fields. Per the documented (and preserved) asymmetric behavior of
// get_workspace, the caller is expected to treat "not all resolvable" the
// same as "none resolvable": the workspace engine never returns a partial
// set of resolvable nodes.
func resolvableNodes(config *Config, fields map[string]Value) ([]string, bool, error) {
	keys := config.Keys()
	all := true
	for _, key := range keys {
		ok, err := isFullyResolvable(config, key, fields)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			all = false
		}
	}
	return keys, all, nil
}

// rung is one unique ancestor path prefix discovered while expanding a
// node's resolved path into its component-wise directory levels.
type rung struct {
	path     string
	depth    int
	firstIdx int
	nodeKey  string
	isNode   bool
}

// GetWorkspace returns every node in the schema that is fully resolvable
// given fields, with its concrete path. If every node in the schema is
// resolvable, the result also includes the ancestor path prefix of every
// node as an implicit directory rung, one entry per unique prefix,
// topologically ordered. If any node is not resolvable, the result is
// empty — this asymmetric behavior is inferred from the upstream
// implementation's test fixtures and is intentionally preserved; see
// DESIGN.md.
func GetWorkspace(config *Config, fields map[string]Value) ([]ResolvedPathItem, error) {
	keys, all, err := resolvableNodes(config, fields)
	if err != nil {
		return nil, err
	}
	if !all {
		return nil, nil
	}

	rungsByPath := make(map[string]*rung)
	var rungOrder []string

	for idx, key := range keys {
		components, err := buildPathComponents(config, key, fields)
		if err != nil {
			return nil, err
		}

		acc := ""
		for depth, comp := range components {
			acc = path.Join(acc, comp.literal)
			if _, ok := rungsByPath[acc]; !ok {
				rungsByPath[acc] = &rung{path: acc, depth: depth, firstIdx: idx}
				rungOrder = append(rungOrder, acc)
			}
		}

		// The last rung computed from the template's own components must be
		// byte-identical to GetPath's raw concatenation, not path.Join's cleaned
		// form; replace it with the authoritative value and mark it as this
		// node's own entry.
		resolvedPath, err := GetPath(config, key, fields)
		if err != nil {
			return nil, err
		}
		if len(components) > 0 {
			lastClean := acc
			if r, ok := rungsByPath[lastClean]; ok && r.nodeKey == "" && !r.isNode {
				delete(rungsByPath, lastClean)
				for i, p := range rungOrder {
					if p == lastClean {
						rungOrder[i] = resolvedPath
						break
					}
				}
				rungsByPath[resolvedPath] = &rung{path: resolvedPath, depth: r.depth, firstIdx: r.firstIdx}
			}
		}
		if r, ok := rungsByPath[resolvedPath]; ok {
			r.nodeKey = key
			r.isNode = true
		} else {
			rungsByPath[resolvedPath] = &rung{path: resolvedPath, depth: len(components) - 1, firstIdx: idx, nodeKey: key, isNode: true}
			rungOrder = append(rungOrder, resolvedPath)
		}
	}

	sort.SliceStable(rungOrder, func(i, j int) bool {
		ri, rj := rungsByPath[rungOrder[i]], rungsByPath[rungOrder[j]]
		if ri.depth != rj.depth {
			return ri.depth < rj.depth
		}
		return ri.firstIdx < rj.firstIdx
	})

	result := make([]ResolvedPathItem, 0, len(rungOrder))
	for _, p := range rungOrder {
		r := rungsByPath[p]
		if r.isNode {
			item, err := config.PathItem(r.nodeKey)
			if err != nil {
				return nil, err
			}
			result = append(result, ResolvedPathItem{
				Key:        r.nodeKey,
				Path:       p,
				Permission: item.Permission,
				Owner:      item.Owner,
				PathType:   item.PathType,
				Deferred:   item.Deferred,
				Metadata:   item.Metadata,
			})
			continue
		}
		result = append(result, ResolvedPathItem{
			Path:       p,
			Permission: PermissionInherit,
			Owner:      OwnerInherit,
			PathType:   PathTypeDirectory,
		})
	}
	return result, nil
}

// workspaceOptions configures CreateWorkspace's ambient behavior.
type workspaceOptions struct {
	logger     *log.Logger
	registerer prometheus.Registerer
}

// WorkspaceOption configures CreateWorkspace.
type WorkspaceOption func(*workspaceOptions)

// WithLogger overrides the *log.Logger CreateWorkspace uses for its
// per-node dispatch log lines. The default is charmbracelet/log's package
// logger.
func WithLogger(logger *log.Logger) WorkspaceOption {
	return func(o *workspaceOptions) { o.logger = logger }
}

// WithMetricsRegisterer registers CreateWorkspace's dispatch counter and
// duration histogram against reg. Without this option, no metrics are
// recorded.
func WithMetricsRegisterer(reg prometheus.Registerer) WorkspaceOption {
	return func(o *workspaceOptions) { o.registerer = reg }
}

func mergeFields(fields, extra map[string]Value) map[string]Value {
	merged := make(map[string]Value, len(fields)+len(extra))
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// includedForCreate applies the deferred-node rule on top of the schema's
// resolvable node set: a deferred node is included only if at least one
// non-deferred transitive descendant is also included. Non-deferred nodes
// are always included when resolvable. The result is ordered so that
// parents precede children, with declaration order breaking ties among
// siblings.
func includedForCreate(config *Config, keys []string) ([]string, error) {
	nonDeferredIncluded := make(map[string]bool)
	deferredKeys := make([]string, 0)
	for _, k := range keys {
		item, err := config.PathItem(k)
		if err != nil {
			return nil, err
		}
		if item.Deferred {
			deferredKeys = append(deferredKeys, k)
		} else {
			nonDeferredIncluded[k] = true
		}
	}

	included := make(map[string]bool, len(nonDeferredIncluded))
	for k := range nonDeferredIncluded {
		included[k] = true
	}

	// Apply iteratively until stable, per the spec's description of the
	// algorithm; a deferred node never feeds another deferred node's
	// inclusion through anything but its own non-deferred descendants, so
	// this in practice converges in a single pass.
	for {
		changed := false
		for _, k := range deferredKeys {
			if included[k] {
				continue
			}
			for _, d := range config.forest.Descendants(k) {
				if nonDeferredIncluded[d] && included[d] {
					included[k] = true
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	// Depth-order for parent-before-child; declaration order breaks ties.
	type ordered struct {
		key      string
		depth    int
		declared int
	}
	orderedKeys := make([]ordered, 0, len(included))
	for declared, k := range keys {
		if !included[k] {
			continue
		}
		chain, err := config.forest.Chain(k)
		if err != nil {
			return nil, err
		}
		orderedKeys = append(orderedKeys, ordered{key: k, depth: len(chain), declared: declared})
	}
	sort.SliceStable(orderedKeys, func(i, j int) bool {
		if orderedKeys[i].depth != orderedKeys[j].depth {
			return orderedKeys[i].depth < orderedKeys[j].depth
		}
		return orderedKeys[i].declared < orderedKeys[j].declared
	})

	result := make([]string, len(orderedKeys))
	for i, o := range orderedKeys {
		result[i] = o.key
	}
	return result, nil
}

// CreateWorkspace drives workspace materialization via callback, the sole
// filesystem actor. It computes the resolvable node set as in GetWorkspace,
// applies the deferred-node rule, orders the result so parents precede
// children, and awaits callback once per included node before moving on to
// the next. If ctx is cancelled, no further callbacks are dispatched, and
// already-invoked callbacks are not rolled back. A callback error aborts
// the traversal immediately and is returned wrapped in IOError.
func CreateWorkspace(
	ctx context.Context,
	config *Config,
	fields map[string]Value,
	extraMetadata map[string]Value,
	callback IOCallback,
	opts ...WorkspaceOption,
) error {
	var o workspaceOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = defaultLogger()
	}
	m := metrics.NewWorkspace(o.registerer)

	keys, all, err := resolvableNodes(config, fields)
	if err != nil {
		return err
	}
	if !all {
		return nil
	}

	included, err := includedForCreate(config, keys)
	if err != nil {
		return err
	}
	if len(included) == 0 {
		return nil
	}

	runID := uuid.New().String()
	effectiveFields := mergeFields(fields, extraMetadata)
	start := time.Now()
	defer func() { m.ObserveDuration(time.Since(start).Seconds()) }()

	for _, key := range included {
		if err := ctx.Err(); err != nil {
			return err
		}

		item, err := config.PathItem(key)
		if err != nil {
			return err
		}
		resolvedPath, err := GetPath(config, key, fields)
		if err != nil {
			return err
		}
		resolved := ResolvedPathItem{
			Key:        key,
			Path:       resolvedPath,
			Permission: item.Permission,
			Owner:      item.Owner,
			PathType:   item.PathType,
			Deferred:   item.Deferred,
			Metadata:   item.Metadata,
		}

		logDispatchStart(o.logger, runID, key, resolvedPath, item.Deferred)
		m.ObserveDispatch(key)

		dispatchStart := time.Now()
		callErr := invokeWithRecover(o.logger, func() error {
			return callback(ctx, config, effectiveFields, resolved)
		})
		logDispatchDone(o.logger, runID, key, dispatchStart, callErr)

		if callErr != nil {
			return &IOError{Key: key, Cause: callErr}
		}
	}
	return nil
}
