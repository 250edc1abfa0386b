// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestNewWorkspaceNilRegisterer(t *testing.T) {
	w := NewWorkspace(nil)
	assert.NotPanics(t, func() {
		w.ObserveDispatch("key")
		w.ObserveDuration(1.5)
	})
}

func TestNewWorkspaceRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	w := NewWorkspace(reg)

	w.ObserveDispatch("shots")
	w.ObserveDispatch("shots")
	w.ObserveDuration(0.25)

	families, err := reg.Gather()
	assert.Nil(t, err)

	var counterFound, histogramFound bool
	for _, mf := range families {
		switch mf.GetName() {
		case "pathresolver_nodes_dispatched_total":
			counterFound = true
			assert.Len(t, mf.GetMetric(), 1)
			assert.Equal(t, float64(2), mf.GetMetric()[0].GetCounter().GetValue())
		case "pathresolver_create_workspace_duration_seconds":
			histogramFound = true
			assert.EqualValues(t, 1, mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, counterFound)
	assert.True(t, histogramFound)
}
