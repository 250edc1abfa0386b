// Copyright 2021 Flamego. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pathresolver

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	"github.com/charmbracelet/log"
)

var (
	dunno     = []byte("???")
	centerDot = []byte("·")
	dot       = []byte(".")
	slash     = []byte("/")
)

// source returns a space-trimmed slice of the n'th line.
func source(lines [][]byte, n int) []byte {
	n-- // In a stack trace, lines are 1-indexed but our array is 0-indexed.
	if n < 0 || n >= len(lines) {
		return dunno
	}
	return bytes.TrimSpace(lines[n])
}

// function returns, if possible, the name of the function containing the PC.
func function(pc uintptr) []byte {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return dunno
	}
	name := []byte(fn.Name())
	if lastSlash := bytes.LastIndex(name, slash); lastSlash >= 0 {
		name = name[lastSlash+1:]
	}
	if period := bytes.Index(name, dot); period >= 0 {
		name = name[period+1:]
	}
	return bytes.ReplaceAll(name, centerDot, dot)
}

// stack returns a formatted stack trace, skipping the first skip frames.
func stack(skip int) []byte {
	buf := new(bytes.Buffer)
	var lines [][]byte
	var lastFile string
	for i := skip; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		_, _ = fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
		if file != lastFile {
			data, err := os.ReadFile(file)
			if err != nil {
				continue
			}
			lines = bytes.Split(data, []byte{'\n'})
			lastFile = file
		}
		_, _ = fmt.Fprintf(buf, "\t%s: %s\n", function(pc), source(lines, line))
	}
	return buf.Bytes()
}

// panicError wraps a recovered panic value for a single IO callback
// invocation, carrying a formatted stack trace for diagnostics.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// invokeWithRecover calls fn and converts any panic into a *panicError
// instead of letting it unwind past create_workspace. One misbehaving host
// callback must not crash the caller's process; it surfaces as an ordinary
// IOError instead.
func invokeWithRecover(logger *log.Logger, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			trace := stack(3)
			logger.Error("recovered panic in IO callback", "panic", r, "stack", string(trace))
			err = &panicError{value: r, stack: trace}
		}
	}()
	return fn()
}
