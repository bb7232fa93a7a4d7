// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// condition rewrites the caller's raw problem (cx, cy, gx, gy, h) into
// w's scratch arrays:
//
//  1. Rotate every constraint direction by the rotation that aligns
//     (cx, cy) with the +y axis, so the objective becomes "minimize y".
//  2. Drop any constraint that rotates to (0, 0): if its right-hand side
//     is <= 0 the constraint reads "0 >= h" and is trivially true, so it
//     is skipped; otherwise it is trivially false and the whole problem
//     is infeasible.
//  3. Normalize surviving constraints so max(|Gx|, |Gy|) = 1.
//  4. Translate the problem by the least-squares offset o that
//     minimizes sum_i (h[i] - Gx[i]*o.x - Gy[i]*o.y)^2, which keeps the
//     conditioned system numerically centered around the origin without
//     changing its solution set.
//
// condition assumes the caller has already ruled out a degenerate
// (cx, cy) = (0, 0) gradient; it reports only whether an always-false
// constraint was found.
func (w *Workspace) condition(r rotation, gx, gy, h []float64) bool {
	w.r = r

	var gtg11, gtg12, gtg22, gtcX, gtcY float64
	n := 0
	for i := range gx {
		rgx, rgy := r.apply(gx[i], gy[i])
		rh := h[i]

		if Feq(rgx, 0) && Feq(rgy, 0) {
			if rh <= 0 {
				continue
			}
			return false
		}

		norm := maxAbs(rgx, rgy)
		rgx, rgy, rh = rgx/norm, rgy/norm, rh/norm

		gtg11 += rgx * rgx
		gtg12 += rgx * rgy
		gtg22 += rgy * rgy
		gtcX += rgx * rh
		gtcY += rgy * rh

		w.gx[n], w.gy[n], w.h[n] = rgx, rgy, rh
		n++
	}

	// o = (GtG)^-1 * Gtc; GtG is symmetric [[gtg11, gtg12], [gtg12, gtg22]],
	// whose inverse is (1/det) * [[gtg22, -gtg12], [-gtg12, gtg11]].
	var o point
	if det := gtg11*gtg22 - gtg12*gtg12; det != 0 {
		o.X = (gtg22*gtcX - gtg12*gtcY) / det
		o.Y = (-gtg12*gtcX + gtg11*gtcY) / det
	}
	w.o = o
	w.n = n

	for i := 0; i < n; i++ {
		w.h[i] -= o.X*w.gx[i] + o.Y*w.gy[i]
	}
	return true
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
