// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import "math"

// EpsAbs and EpsRel are the absolute and relative tolerances used by Feq,
// the approximate-equality predicate every zero-test in this package goes
// through. The defaults (1e-30, 1e-15) match the values the algorithm was
// originally tuned with; callers solving problems at an unusual numeric
// scale may override them before calling Init or SolveSimple.
var (
	EpsAbs = 1e-30
	EpsRel = 1e-15
)

// Feq reports whether a and b are equal up to EpsAbs/EpsRel tolerance.
// The solver's tolerance-sensitive tests (slope and envelope ties,
// parallel lines, zero slopes) use Feq rather than ==; replacing those
// with bitwise equality breaks the prune-and-search loop's termination
// near degenerate geometry. A few checks compare exactly: newRotation's
// degenerate-gradient test, condition's singular-matrix test and
// edgeOverRange's flat-line shortcut; the window tests in prune and
// categorize are plain ordered comparisons.
func Feq(a, b float64) bool {
	d := math.Abs(a - b)
	return d < EpsAbs || d < EpsRel*math.Max(math.Abs(a), math.Abs(b))
}

// point is a 2D vector, used both for the conditioner's centering offset
// and for solve results before/after back-transformation.
type point struct {
	X, Y float64
}

// rotation is the 2x2 matrix that aligns a given gradient with the +y
// axis. It is always orthogonal, so its inverse is its own transpose.
type rotation struct {
	a11, a12, a21, a22 float64
}

// newRotation builds the rotation that carries (x, y) onto (0, hypot(x,
// y)). ok is false only when x and y are both exactly zero, i.e. the
// objective gradient is degenerate and no such rotation exists.
func newRotation(x, y float64) (r rotation, ok bool) {
	h := math.Hypot(x, y)
	if h == 0 {
		return rotation{}, false
	}
	return rotation{
		a11: y / h, a12: -x / h,
		a21: x / h, a22: y / h,
	}, true
}

// apply rotates (x, y) by r.
func (r rotation) apply(x, y float64) (rx, ry float64) {
	return r.a11*x + r.a12*y, r.a21*x + r.a22*y
}

// applyInverse rotates (x, y) by r's inverse, i.e. its transpose.
func (r rotation) applyInverse(x, y float64) (rx, ry float64) {
	return r.a11*x + r.a21*y, r.a12*x + r.a22*y
}

// intersect solves the 2x2 linear system formed by two oriented lines
// G1.x*x + G1.y*y = h1 and G2.x*x + G2.y*y = h2. ok is false when the
// lines are parallel (within Feq of the zero determinant).
func intersect(gx1, gy1, h1, gx2, gy2, h2 float64) (x, y float64, ok bool) {
	den := gx1*gy2 - gx2*gy1
	if Feq(den, 0) {
		return 0, 0, false
	}
	x = (h1*gy2 - h2*gy1) / den
	y = (h2*gx1 - h1*gx2) / den
	return x, y, true
}
