// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"fmt"
	"io"
)

// LogLevel controls how much a Logger reports about a Solve call.
type LogLevel int

const (
	// LogNoop no output is generated. This is the zero value, so an
	// unset Logger field costs nothing.
	LogNoop LogLevel = iota
	// LogResult prints one line per Solve call with the final status
	// and the number of prune-and-search rounds it took.
	LogResult
	// LogTrace additionally prints one line per prune-and-search round:
	// surviving ceil/floor counts, the chosen median, and the verdict.
	LogTrace
)

// Logger reports solve-time diagnostics to an io.Writer. It is never
// required: a nil *Logger, a Logger with Level LogNoop, or a Logger with
// a nil Out all disable logging and cost nothing beyond a level check.
type Logger struct {
	Level LogLevel
	Out   io.Writer
}

func (l *Logger) enabled(level LogLevel) bool {
	return l != nil && l.Out != nil && l.Level >= level
}

func (l *Logger) printf(format string, args ...any) {
	fmt.Fprintf(l.Out, format, args...)
}

func (l *Logger) round(iter, ceilLen, floorLen int, x float64, verdict string) {
	if l.enabled(LogTrace) {
		l.printf("linprog2d: round %d ceil=%d floor=%d x=%g verdict=%s\n",
			iter, ceilLen, floorLen, x, verdict)
	}
}

func (l *Logger) result(status Status, iterations int) {
	if l.enabled(LogResult) {
		l.printf("linprog2d: result status=%s iterations=%d\n", status, iterations)
	}
}
