// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// locate evaluates the floor's upper envelope and the ceil's lower
// envelope at the probe x̃ = xt and decides what that tells us about the
// optimum. Both envelopes are piecewise linear with a kink wherever two
// or more of their lines tie for the extreme value; envelopeExtreme
// reports the min and max slope among every line tied at x̃, which is
// exactly the left- and right-derivative of the envelope there (an
// upper envelope is convex, so its left-derivative is the min tied
// slope and its right-derivative the max; a lower envelope is concave,
// so the roles swap).
//
//   - If the envelopes disagree (floor above ceil), x̃ is infeasible.
//     Comparing the floor and ceil envelopes' one-sided derivatives says
//     whether the gap can still be closed by moving left or right, or
//     whether it cannot be closed on either side at all.
//   - If they agree, x̃ is feasible. The floor envelope's one-sided
//     derivatives say whether moving left or right would lower the
//     objective further, or whether x̃ already straddles the floor
//     envelope's unconstrained minimum (both signs present among the
//     tied slopes), in which case it is the answer — a single point,
//     unless the tied floor (and binding ceil) lines are flat across the
//     whole window, in which case the answer is the edge [x0, x1]. A floor
//     envelope that is flat on only one side of x̃ narrows the window
//     toward that side, so the flat stretch is reported by a later round.
//
// The boolean return reports whether the search is finished; when it
// is, res holds the (not yet back-transformed) answer. When it is not,
// locate has already narrowed w.x0 or w.x1 and the caller should run
// another round.
func (w *Workspace) locate(xt float64, ceil, floor []int) (verdict string, res Result, done bool) {
	fVal, floorMinDx, floorMaxDx, _ := w.envelopeExtreme(floor, xt, false)

	haveCeil := len(ceil) > 0
	gVal := math.Inf(1)
	var ceilMinDx, ceilMaxDx float64
	if haveCeil {
		gVal, ceilMinDx, ceilMaxDx, _ = w.envelopeExtreme(ceil, xt, true)
	}

	if fVal > gVal && !Feq(fVal, gVal) {
		switch {
		case floorMaxDx < ceilMinDx && !Feq(floorMaxDx, ceilMinDx):
			w.x0 = xt
			return "right", Result{}, false
		case floorMinDx > ceilMaxDx && !Feq(floorMinDx, ceilMaxDx):
			w.x1 = xt
			return "left", Result{}, false
		default:
			return "infeasible", Result{Status: StatusInfeasible}, true
		}
	}

	switch {
	case !Feq(floorMaxDx, 0) && floorMaxDx < 0:
		w.x0 = xt
		return "right", Result{}, false
	case !Feq(floorMinDx, 0) && floorMinDx > 0:
		w.x1 = xt
		return "left", Result{}, false
	case Feq(floorMinDx, 0) && !Feq(floorMaxDx, 0):
		w.x1 = xt
		return "left", Result{}, false
	case Feq(floorMaxDx, 0) && !Feq(floorMinDx, 0):
		w.x0 = xt
		return "right", Result{}, false
	default:
		flat := Feq(floorMinDx, 0) && Feq(floorMaxDx, 0)
		if flat && haveCeil && Feq(fVal, gVal) && Feq(ceilMinDx, 0) && Feq(ceilMaxDx, 0) {
			return "edge", w.edgeOverRange(0, fVal), true
		}
		return "point", Result{Status: StatusPoint, X1: xt, Y1: fVal}, true
	}
}

// envelopeExtreme evaluates every line listed in idcs at x and returns
// the maximum value (wantMin false) or minimum value (wantMin true)
// along with the smallest and largest slope among every line tied
// (within Feq) at that extreme, plus the index of one such line.
func (w *Workspace) envelopeExtreme(idcs []int, x float64, wantMin bool) (val, minDx, maxDx float64, idx int) {
	idx = idcs[0]
	val = w.y0[idx] + w.dx[idx]*x
	minDx, maxDx = w.dx[idx], w.dx[idx]
	for _, j := range idcs[1:] {
		v := w.y0[j] + w.dx[j]*x
		switch {
		case !Feq(v, val) && ((wantMin && v < val) || (!wantMin && v > val)):
			idx, val = j, v
			minDx, maxDx = w.dx[j], w.dx[j]
		case Feq(v, val):
			if w.dx[j] < minDx {
				minDx = w.dx[j]
			}
			if w.dx[j] > maxDx {
				maxDx = w.dx[j]
			}
		}
	}
	return val, minDx, maxDx, idx
}
