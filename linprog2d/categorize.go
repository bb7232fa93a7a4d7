// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// categorize partitions w's n conditioned constraints into the ceil and
// floor index lists and tightens the left/right x-bounds from any
// perfectly vertical constraint. Returns false if the vertical bounds
// alone already make the problem infeasible.
//
// Gx*x + Gy*y >= h rearranges to y >= y0 + dx*x when Gy > 0 (a lower
// bound: floor), and to y <= y0 + dx*x when Gy < 0, since dividing by a
// negative Gy flips the inequality (an upper bound: ceil).
func (w *Workspace) categorize() bool {
	w.ceilLen, w.floorLen = 0, 0

	for i := 0; i < w.n; i++ {
		gx, gy, h := w.gx[i], w.gy[i], w.h[i]
		switch {
		case Feq(gy, 0) && gx > 0:
			// x >= h/gx
			if v := h / gx; v > w.x0 {
				w.x0 = v
			}
		case Feq(gy, 0) && gx < 0:
			// x <= h/gx (gx < 0 flips the inequality correctly)
			if v := h / gx; v < w.x1 {
				w.x1 = v
			}
		case gy < 0:
			w.ceil[w.ceilLen] = i
			w.ceilLen++
		default: // gy > 0
			w.floor[w.floorLen] = i
			w.floorLen++
		}
	}

	w.slopeForm(w.ceil[:w.ceilLen])
	w.slopeForm(w.floor[:w.floorLen])

	return w.x0 <= w.x1
}

// slopeForm precomputes the slope/y-intercept form of every constraint
// listed in idcs: the line Gx*x + Gy*y = h reads y = y0 + dx*x.
func (w *Workspace) slopeForm(idcs []int) {
	for _, j := range idcs {
		w.dx[j] = -w.gx[j] / w.gy[j]
		w.y0[j] = w.h[j] / w.gy[j]
	}
}
