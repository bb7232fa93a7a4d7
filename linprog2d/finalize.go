// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// finalize produces the answer once a round's pruning has left at most
// one surviving ceil line and exactly one floor line (floor can never
// collapse to zero: the caller already handled floorLen == 0 as
// unconditionally unbounded before the first round).
func (w *Workspace) finalize(ceil, floor []int) Result {
	fIdx := floor[0]
	dxF, y0F := w.dx[fIdx], w.y0[fIdx]

	if len(ceil) == 0 {
		return w.finalizeFloorOnly(dxF, y0F)
	}

	cIdx := ceil[0]
	dxC, y0C := w.dx[cIdx], w.y0[cIdx]

	if Feq(dxF, dxC) {
		gap := y0C - y0F
		if gap < 0 && !Feq(gap, 0) {
			return Result{Status: StatusInfeasible}
		}
		if Feq(dxF, 0) {
			return w.edgeOverRange(dxF, y0F)
		}
		// A parallel pair with nonzero slope never crosses, so the ceil
		// line never binds tighter than the x-range itself: the floor's
		// own minimizing side of [x0, x1] is the whole answer.
		var xStar float64
		if dxF > 0 {
			xStar = w.x0
		} else {
			xStar = w.x1
		}
		if math.IsInf(xStar, 0) {
			return Result{Status: StatusUnbounded}
		}
		return Result{Status: StatusPoint, X1: xStar, Y1: y0F + dxF*xStar}
	}

	xCross := (y0C - y0F) / (dxF - dxC)
	crossFeasible := (xCross >= w.x0 || Feq(xCross, w.x0)) && (xCross <= w.x1 || Feq(xCross, w.x1))

	if Feq(dxF, 0) {
		return w.finalizeFlatFloor(y0F, dxC, xCross)
	}

	var xStar float64
	if dxF > 0 {
		xStar = w.x0
	} else {
		xStar = w.x1
	}

	if math.IsInf(xStar, 0) {
		// The floor keeps falling toward the open end of [x0, x1]. Unless
		// the ceil line drops below it on that side, the objective is
		// unbounded; if it does, the optimum is the crossing, provided the
		// crossing lies within [x0, x1].
		if (dxF > 0) == (dxF > dxC) {
			return Result{Status: StatusUnbounded}
		}
		if !crossFeasible {
			return Result{Status: StatusInfeasible}
		}
		return Result{Status: StatusPoint, X1: xCross, Y1: y0F + dxF*xCross}
	}

	fStar := y0F + dxF*xStar
	gStar := y0C + dxC*xStar
	if fStar <= gStar || Feq(fStar, gStar) {
		return Result{Status: StatusPoint, X1: xStar, Y1: fStar}
	}
	if !crossFeasible {
		return Result{Status: StatusInfeasible}
	}
	return Result{Status: StatusPoint, X1: xCross, Y1: y0F + dxF*xCross}
}

// finalizeFlatFloor handles a floor line with zero slope: its own
// minimum, y0F, is attained at every x, so the answer is the sub-range
// of [x0, x1] where the ceil line stays at or above y0F.
func (w *Workspace) finalizeFlatFloor(y0F, dxC, xCross float64) Result {
	lo, hi := w.x0, w.x1
	if dxC > 0 {
		if xCross > lo {
			lo = xCross
		}
	} else {
		if xCross < hi {
			hi = xCross
		}
	}

	if lo > hi && !Feq(lo, hi) {
		return Result{Status: StatusInfeasible}
	}
	if Feq(lo, hi) {
		return Result{Status: StatusPoint, X1: lo, Y1: y0F}
	}
	if math.IsInf(lo, -1) || math.IsInf(hi, 1) {
		return Result{Status: StatusUnbounded}
	}
	return Result{Status: StatusEdge, X1: lo, Y1: y0F, X2: hi, Y2: y0F}
}

// finalizeFloorOnly handles the case where every ceil constraint has
// already been eliminated, leaving only a lower bound on y: the
// objective is minimized at whichever end of [x0, x1] the floor line is
// lowest, or is unbounded if that end of the x-range is open.
func (w *Workspace) finalizeFloorOnly(dxF, y0F float64) Result {
	switch {
	case Feq(dxF, 0):
		return w.edgeOverRange(dxF, y0F)
	case dxF > 0:
		if math.IsInf(w.x0, -1) {
			return Result{Status: StatusUnbounded}
		}
		return Result{Status: StatusPoint, X1: w.x0, Y1: y0F + dxF*w.x0}
	default:
		if math.IsInf(w.x1, 1) {
			return Result{Status: StatusUnbounded}
		}
		return Result{Status: StatusPoint, X1: w.x1, Y1: y0F + dxF*w.x1}
	}
}

// edgeOverRange builds the result for a line with slope dx and
// intercept y0 that is optimal across the whole of [x0, x1]. A flat
// line over a still-open x-range has no finite edge to report, since
// its optimal set is an unbounded ray at the same objective value; that
// is reported as unbounded rather than fabricated as an infinite edge.
func (w *Workspace) edgeOverRange(dx, y0 float64) Result {
	if math.IsInf(w.x0, -1) || math.IsInf(w.x1, 1) {
		return Result{Status: StatusUnbounded}
	}
	val := func(x float64) float64 {
		if dx == 0 {
			return y0
		}
		return y0 + dx*x
	}
	if Feq(w.x0, w.x1) {
		return Result{Status: StatusPoint, X1: w.x0, Y1: val(w.x0)}
	}
	return Result{Status: StatusEdge, X1: w.x0, Y1: val(w.x0), X2: w.x1, Y2: val(w.x1)}
}

// transformBack maps a result's coordinates out of the rotated,
// centered space condition built and back into the caller's original
// coordinate system.
func (w *Workspace) transformBack(res Result) Result {
	switch res.Status {
	case StatusPoint:
		res.X1, res.Y1 = w.untransform(res.X1, res.Y1)
	case StatusEdge:
		res.X1, res.Y1 = w.untransform(res.X1, res.Y1)
		res.X2, res.Y2 = w.untransform(res.X2, res.Y2)
	}
	return res
}

// untransform reverses condition's rotate-then-center transform: offset
// first, then rotate by the transpose of the original rotation (valid
// since every rotation built by newRotation is orthogonal).
func (w *Workspace) untransform(x, y float64) (float64, float64) {
	xt, yt := x+w.o.X, y+w.o.Y
	return w.r.applyInverse(xt, yt)
}
