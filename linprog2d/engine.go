// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// run executes the prune-and-search main loop over w's categorized
// ceil/floor lists until the optimum is located or the problem is shown
// to be infeasible or unbounded.
//
// Each round pairs up the constraints surviving within one category (via
// prune), collapsing every pair whose lines don't cross inside the
// current [x0, x1] window into a single dominant survivor, and recording
// the x of every pair that does cross as a pivot candidate. A round that
// yields no candidates only shrinks the lists and goes on to the next
// round; once both categories are down to at most one line, the problem
// is finished directly (finalize). Otherwise the median of the
// candidates is handed to locate, which either narrows [x0, x1] and
// continues or returns the final answer.
func (w *Workspace) run() Result {
	if w.floorLen == 0 {
		w.Logger.round(0, w.ceilLen, w.floorLen, 0, "unbounded")
		return Result{Status: StatusUnbounded}
	}

	ceil := w.ceil[:w.ceilLen]
	floor := w.floor[:w.floorLen]

	for {
		w.iterations++

		if w.x0 > w.x1 && !Feq(w.x0, w.x1) {
			return Result{Status: StatusInfeasible}
		}
		if len(ceil) <= 1 && len(floor) <= 1 {
			return w.finalize(ceil, floor)
		}

		w.intersectLen = 0

		nc := w.prune(ceil, w.tmp, true)
		copy(w.ceil, w.tmp[:nc])
		ceil = w.ceil[:nc]

		nf := w.prune(floor, w.tmp, false)
		copy(w.floor, w.tmp[:nf])
		floor = w.floor[:nf]

		if w.intersectLen == 0 {
			w.Logger.round(w.iterations, len(ceil), len(floor), 0, "shrink")
			continue
		}

		xt := median(w.xIntersect[:w.intersectLen])
		verdict, res, done := w.locate(xt, ceil, floor)
		w.Logger.round(w.iterations, len(ceil), len(floor), xt, verdict)
		if done {
			return res
		}
	}
}

// prune pairs up consecutive entries of idcs and writes the surviving
// index of each pair into dst, returning the number written. A pair
// whose lines are parallel, or whose crossing point falls outside the
// current [x0, x1] window, collapses to its single dominant member
// (dominantParallel or dominantBySlope); a pair that crosses inside the window survives
// whole and contributes its crossing x to w.xIntersect. A trailing
// unpaired entry is carried forward unchanged.
func (w *Workspace) prune(idcs []int, dst []int, isCeil bool) int {
	n := len(idcs)
	m := 0
	i := 0
	for ; i+1 < n; i += 2 {
		a, b := idcs[i], idcs[i+1]

		if Feq(w.dx[a], w.dx[b]) {
			dst[m] = w.dominantParallel(a, b, isCeil)
			m++
			continue
		}

		x := (w.y0[b] - w.y0[a]) / (w.dx[a] - w.dx[b])
		switch {
		case x <= w.x0:
			dst[m] = w.dominantBySlope(a, b, isCeil, true)
			m++
		case x >= w.x1:
			dst[m] = w.dominantBySlope(a, b, isCeil, false)
			m++
		default:
			dst[m], dst[m+1] = a, b
			m += 2
			w.xIntersect[w.intersectLen] = x
			w.intersectLen++
		}
	}
	if i < n {
		dst[m] = idcs[i]
		m++
	}
	return m
}

// dominantParallel picks the survivor of two lines with equal slope: the
// lower one for a ceil pair (we want the tightest upper bound), the
// higher one for a floor pair (the tightest lower bound).
func (w *Workspace) dominantParallel(a, b int, isCeil bool) int {
	if isCeil {
		if w.y0[a] <= w.y0[b] {
			return a
		}
		return b
	}
	if w.y0[a] >= w.y0[b] {
		return a
	}
	return b
}

// dominantBySlope picks the survivor of two non-parallel lines whose
// crossing point lies outside [x0, x1], so one of them is strictly
// better than the other everywhere inside the window. crossingIsLeft is
// true when the crossing is at or left of x0, meaning the window lies
// entirely to the right of it.
func (w *Workspace) dominantBySlope(a, b int, isCeil, crossingIsLeft bool) int {
	aAbove := w.dx[a] > w.dx[b]
	if !crossingIsLeft {
		aAbove = w.dx[a] < w.dx[b]
	}
	if isCeil {
		if aAbove {
			return b
		}
		return a
	}
	if aAbove {
		return a
	}
	return b
}
