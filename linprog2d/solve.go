// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linprog2d solves two-dimensional linear programs
//
//	minimize   cx*x + cy*y
//	subject to gx[i]*x + gy[i]*y >= h[i]   for i in [0, n)
//
// using Megiddo's prune-and-search paradigm: the objective's gradient is
// rotated onto an axis, the constraints are split into upper and lower
// bounds on the rotated y, and a sequence of worst-case-linear median
// selections narrows the feasible x-range until the optimum is found or
// the problem is shown infeasible or unbounded. The whole algorithm runs
// in time linear in the number of constraints and performs no
// allocation once a Workspace has been built.
package linprog2d

import "errors"

// Status classifies how a Solve call concluded.
type Status int

const (
	// StatusError reports that the inputs were invalid: a constraint
	// count over capacity, or a degenerate (0, 0) objective gradient.
	// Mismatched slice lengths are not reported this way; Solve panics.
	StatusError Status = iota
	// StatusInfeasible reports that no (x, y) satisfies every
	// constraint.
	StatusInfeasible
	// StatusUnbounded reports that the objective can be decreased
	// without limit within the feasible region.
	StatusUnbounded
	// StatusEdge reports that the optimum is attained along an entire
	// segment rather than at a single point; Result holds both
	// endpoints.
	StatusEdge
	// StatusPoint reports that the optimum is attained at a unique
	// point; Result holds it in X1, Y1.
	StatusPoint
)

func (s Status) String() string {
	switch s {
	case StatusError:
		return "error"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusEdge:
		return "edge"
	case StatusPoint:
		return "point"
	default:
		return "unknown"
	}
}

// ErrSolve is the error returned by Result.Err when Status is
// StatusError. It carries no detail beyond the status itself; Solve's
// preconditions are simple enough that the caller that violated one
// already knows which.
var ErrSolve = errors.New("linprog2d: invalid problem")

// Result is the outcome of a Solve call.
type Result struct {
	Status Status
	X1, Y1 float64
	X2, Y2 float64
}

// Err reports a non-nil error when Status is StatusError, and nil
// otherwise. Infeasible and unbounded are valid answers, not errors:
// check Status directly to distinguish them.
func (r Result) Err() error {
	if r.Status == StatusError {
		return ErrSolve
	}
	return nil
}

// Point returns the optimal point and ok = true when Status is
// StatusPoint.
func (r Result) Point() (x, y float64, ok bool) {
	return r.X1, r.Y1, r.Status == StatusPoint
}

// Edge returns the optimal segment's endpoints and ok = true when
// Status is StatusEdge.
func (r Result) Edge() (x1, y1, x2, y2 float64, ok bool) {
	return r.X1, r.Y1, r.X2, r.Y2, r.Status == StatusEdge
}

// Solve finds the minimum of cx*x + cy*y subject to gx[i]*x + gy[i]*y >=
// h[i] for every i, reusing w's scratch storage. gx, gy, and h must have
// equal length; Solve panics otherwise, since that is a caller
// programming error rather than a property of the problem data. A
// constraint count over w.Capacity(), like a degenerate (cx, cy) =
// (0, 0) objective, is instead a property of the problem itself and is
// reported as StatusError.
func (w *Workspace) Solve(cx, cy float64, gx, gy, h []float64) Result {
	n := len(gx)
	if len(gy) != n || len(h) != n {
		panic("linprog2d: gx, gy, h must have equal length")
	}
	if n > w.capacity {
		w.Logger.result(StatusError, 0)
		return Result{Status: StatusError}
	}

	w.resetFor(0)

	r, ok := newRotation(cx, cy)
	if !ok {
		res := Result{Status: StatusError}
		w.Logger.result(res.Status, w.iterations)
		return res
	}

	if !w.condition(r, gx, gy, h) {
		res := Result{Status: StatusInfeasible}
		w.Logger.result(res.Status, w.iterations)
		return res
	}

	if !w.categorize() {
		res := Result{Status: StatusInfeasible}
		w.Logger.result(res.Status, w.iterations)
		return res
	}

	res := w.transformBack(w.run())
	w.Logger.result(res.Status, w.iterations)
	return res
}

// SolveSimple is the allocation-on-the-spot convenience form of Solve:
// it builds a Workspace sized exactly to len(gx) and discards it after
// one use. Prefer Solve with a reused Workspace when solving many
// problems, e.g. in a hot loop.
func SolveSimple(cx, cy float64, gx, gy, h []float64) Result {
	n := len(gx)
	if len(gy) != n || len(h) != n {
		panic("linprog2d: gx, gy, h must have equal length")
	}
	w, err := NewWorkspace(n)
	if err != nil {
		return Result{Status: StatusError}
	}
	return w.Solve(cx, cy, gx, gy, h)
}
