// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics wires the workspace engine's dispatch counters and timing
// histogram into an optional caller-supplied prometheus.Registerer. A nil
// registerer disables metrics entirely; every method is a no-op in that
// case instead of panicking, so hosts that don't care about metrics never
// have to think about them.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Workspace holds the metrics collectors for one Config's workspace
// engine use.
type Workspace struct {
	nodesDispatched *prometheus.CounterVec
	createDuration  prometheus.Histogram
}

// NewWorkspace registers and returns a Workspace's collectors against reg.
// If reg is nil, the returned Workspace's methods are no-ops.
func NewWorkspace(reg prometheus.Registerer) *Workspace {
	if reg == nil {
		return &Workspace{}
	}

	w := &Workspace{
		nodesDispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pathresolver_nodes_dispatched_total",
			Help: "Number of resolved path items dispatched to the IO callback by create_workspace.",
		}, []string{"key"}),
		createDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "pathresolver_create_workspace_duration_seconds",
			Help: "Wall-clock duration of a single create_workspace call.",
		}),
	}
	reg.MustRegister(w.nodesDispatched, w.createDuration)
	return w
}

// ObserveDispatch records that key was dispatched to the IO callback.
func (w *Workspace) ObserveDispatch(key string) {
	if w == nil || w.nodesDispatched == nil {
		return
	}
	w.nodesDispatched.WithLabelValues(key).Inc()
}

// ObserveDuration records the wall-clock duration of one create_workspace
// call, in seconds.
func (w *Workspace) ObserveDuration(seconds float64) {
	if w == nil || w.createDuration == nil {
		return
	}
	w.createDuration.Observe(seconds)
}
