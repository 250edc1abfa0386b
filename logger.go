// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"time"

	"github.com/charmbracelet/log"
)

// defaultLogger is used by CreateWorkspace when no WithLogger option is
// given.
func defaultLogger() *log.Logger {
	return log.Default()
}

// logDispatchStart logs the single debug line emitted immediately before an
// IO callback invocation for one resolved path item.
func logDispatchStart(logger *log.Logger, runID, key, path string, deferred bool) {
	logger.Debug("dispatching resolved path item",
		"run_id", runID,
		"key", key,
		"path", path,
		"deferred", deferred,
	)
}

// logDispatchDone logs the callback's outcome and latency for one resolved
// path item.
func logDispatchDone(logger *log.Logger, runID, key string, started time.Time, err error) {
	elapsed := time.Since(started)
	if err != nil {
		logger.Warn("IO callback failed",
			"run_id", runID,
			"key", key,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	logger.Debug("IO callback completed",
		"run_id", runID,
		"key", key,
		"elapsed", elapsed,
	)
}
