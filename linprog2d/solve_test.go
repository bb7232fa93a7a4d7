// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"math"
	"math/rand"
	"testing"
)

func approxEq(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !Feq(got, want) && math.Abs(got-want) > 1e-6 {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func TestSolveScenarios(t *testing.T) {
	cases := []struct {
		name       string
		cx, cy     float64
		gx, gy, h  []float64
		wantStatus Status
		x1, y1     float64
		x2, y2     float64
	}{
		{
			name:       "Barnfm10e",
			cx:         -5, cy: -10,
			gx:         []float64{1, 0, -1, -8, -4},
			gy:         []float64{0, 1, 0, -8, -12},
			h:          []float64{0, 0, -15, -160, -180},
			wantStatus: StatusPoint,
			x1:         7.5, y1: 12.5,
		},
		{
			name:       "NR book",
			cx:         -40, cy: -60,
			gx:         []float64{-2, 1, -1},
			gy:         []float64{-1, 1, -3},
			h:          []float64{-70, 40, -90},
			wantStatus: StatusPoint,
			x1:         24, y1: 22,
		},
		{
			name:       "V-vertex",
			cx:         0, cy: 1,
			gx:         []float64{1, -1},
			gy:         []float64{1, 1},
			h:          []float64{0, 0},
			wantStatus: StatusPoint,
			x1:         0, y1: 0,
		},
		{
			name:       "Horizontal edge",
			cx:         0, cy: 1,
			gx:         []float64{0, 1, -1},
			gy:         []float64{1, 0, 0},
			h:          []float64{1, -2, -3},
			wantStatus: StatusEdge,
			x1:         -2, y1: 1,
			x2: 3, y2: 1,
		},
		{
			name:       "Vertical-strip infeasible",
			cx:         0, cy: 1,
			gx:         []float64{0, 0, 1, -1},
			gy:         []float64{1, -1, 0, 0},
			h:          []float64{1, -3, 5, 5},
			wantStatus: StatusInfeasible,
		},
		{
			name:       "Single horizontal floor",
			cx:         0, cy: 1,
			gx:         []float64{0},
			gy:         []float64{1},
			h:          []float64{1},
			wantStatus: StatusUnbounded,
		},
		{
			name:       "Parallel nonzero-slope survivors",
			cx:         0, cy: 1,
			gx:         []float64{-1, 1, 1},
			gy:         []float64{1, -1, 0},
			h:          []float64{0, -5, 2},
			wantStatus: StatusPoint,
			x1:         2, y1: 2,
		},
		{
			name:       "Degenerate objective",
			cx:         0, cy: 0,
			gx:         []float64{0},
			gy:         []float64{1},
			h:          []float64{1},
			wantStatus: StatusError,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := SolveSimple(c.cx, c.cy, c.gx, c.gy, c.h)
			if res.Status != c.wantStatus {
				t.Fatalf("status = %v, want %v", res.Status, c.wantStatus)
			}
			switch c.wantStatus {
			case StatusPoint:
				x, y, ok := res.Point()
				if !ok {
					t.Fatal("Point() ok = false")
				}
				approxEq(t, "x", x, c.x1)
				approxEq(t, "y", y, c.y1)
			case StatusEdge:
				x1, y1, x2, y2, ok := res.Edge()
				if !ok {
					t.Fatal("Edge() ok = false")
				}
				approxEq(t, "x1", x1, c.x1)
				approxEq(t, "y1", y1, c.y1)
				approxEq(t, "x2", x2, c.x2)
				approxEq(t, "y2", y2, c.y2)
			case StatusError:
				if res.Err() == nil {
					t.Fatal("Err() should be non-nil for StatusError")
				}
			}
		})
	}
}

// feasible reports whether (x, y) satisfies every constraint
// Gx[i]*x + Gy[i]*y >= h[i], within tolerance.
func feasible(gx, gy, h []float64, x, y float64) bool {
	for i := range gx {
		v := gx[i]*x + gy[i]*y
		if v < h[i] && !Feq(v, h[i]) {
			return false
		}
	}
	return true
}

// feasibleVertices brute-force enumerates every pairwise intersection of
// the given constraint lines and keeps those that satisfy every
// constraint: the candidate vertices of the feasible polygon. Used only
// to cross-check Solve's infeasible/unbounded/point verdicts in tests,
// not a general polytope-vertex enumerator.
func feasibleVertices(gx, gy, h []float64) [][2]float64 {
	var verts [][2]float64
	for i := range gx {
		for j := i + 1; j < len(gx); j++ {
			x, y, ok := intersect(gx[i], gy[i], h[i], gx[j], gy[j], h[j])
			if ok && feasible(gx, gy, h, x, y) {
				verts = append(verts, [2]float64{x, y})
			}
		}
	}
	return verts
}

// regionHasFeasiblePoint supplements feasibleVertices with a coarse
// random sample: an unbounded feasible strip between two parallel
// constraints has no pairwise-intersection vertex at all.
func regionHasFeasiblePoint(rng *rand.Rand, gx, gy, h []float64) bool {
	for i := 0; i < 500; i++ {
		x := (rng.Float64()*2 - 1) * 50
		y := (rng.Float64()*2 - 1) * 50
		if feasible(gx, gy, h, x, y) {
			return true
		}
	}
	return false
}

// TestSolveCrossCheckAgainstVertexOracle cross-checks Solve's verdict on
// many randomly generated small constraint sets against the brute-force
// oracle above: a reported StatusInfeasible must not have any feasible
// vertex or sampled point, a reported StatusUnbounded must have at least
// one, and a reported StatusPoint must not be beaten by any feasible
// vertex's objective value.
func TestSolveCrossCheckAgainstVertexOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const trials = 400
	for trial := 0; trial < trials; trial++ {
		n := 2 + rng.Intn(4)
		gx := make([]float64, n)
		gy := make([]float64, n)
		h := make([]float64, n)
		for i := range gx {
			gx[i] = float64(rng.Intn(11) - 5)
			gy[i] = float64(rng.Intn(11) - 5)
			h[i] = float64(rng.Intn(11) - 5)
			if gx[i] == 0 && gy[i] == 0 {
				gx[i] = 1
			}
		}
		cx := float64(rng.Intn(11) - 5)
		cy := float64(rng.Intn(11) - 5)
		if cx == 0 && cy == 0 {
			continue
		}

		res := SolveSimple(cx, cy, gx, gy, h)
		verts := feasibleVertices(gx, gy, h)

		switch res.Status {
		case StatusInfeasible:
			if len(verts) > 0 {
				t.Fatalf("trial %d: got StatusInfeasible but vertex %v satisfies every constraint (gx=%v gy=%v h=%v)",
					trial, verts[0], gx, gy, h)
			}
			if regionHasFeasiblePoint(rng, gx, gy, h) {
				t.Fatalf("trial %d: got StatusInfeasible but a sampled point satisfies every constraint (gx=%v gy=%v h=%v)",
					trial, gx, gy, h)
			}
		case StatusUnbounded:
			if len(verts) == 0 && !regionHasFeasiblePoint(rng, gx, gy, h) {
				t.Fatalf("trial %d: got StatusUnbounded but no feasible point was found (gx=%v gy=%v h=%v)",
					trial, gx, gy, h)
			}
		case StatusPoint:
			x, y, _ := res.Point()
			obj := cx*x + cy*y
			for _, v := range verts {
				vObj := cx*v[0] + cy*v[1]
				if obj > vObj && !Feq(obj, vObj) {
					t.Fatalf("trial %d: reported point (%v,%v) objective %v worse than feasible vertex %v objective %v",
						trial, x, y, obj, v, vObj)
				}
			}
		}
	}
}

func TestSolvePointIsFeasible(t *testing.T) {
	cx, cy := -5.0, -10.0
	gx := []float64{1, 0, -1, -8, -4}
	gy := []float64{0, 1, 0, -8, -12}
	h := []float64{0, 0, -15, -160, -180}

	res := SolveSimple(cx, cy, gx, gy, h)
	x, y, ok := res.Point()
	if !ok {
		t.Fatalf("expected a point result, got %v", res.Status)
	}
	if !feasible(gx, gy, h, x, y) {
		t.Fatalf("optimum (%v, %v) violates a constraint", x, y)
	}
}

func TestSolveEdgeEndpointsAreFeasibleAndTied(t *testing.T) {
	cx, cy := 0.0, 1.0
	gx := []float64{0, 1, -1}
	gy := []float64{1, 0, 0}
	h := []float64{1, -2, -3}

	res := SolveSimple(cx, cy, gx, gy, h)
	x1, y1, x2, y2, ok := res.Edge()
	if !ok {
		t.Fatalf("expected an edge result, got %v", res.Status)
	}
	if !feasible(gx, gy, h, x1, y1) || !feasible(gx, gy, h, x2, y2) {
		t.Fatal("edge endpoint violates a constraint")
	}
	obj1 := cx*x1 + cy*y1
	obj2 := cx*x2 + cy*y2
	if !Feq(obj1, obj2) {
		t.Fatalf("edge endpoints have different objective values: %v vs %v", obj1, obj2)
	}
}

func TestSolveCapacityExceededIsError(t *testing.T) {
	w, _ := NewWorkspace(1)
	res := w.Solve(0, 1, []float64{1, 1}, []float64{0, 0}, []float64{1, 1})
	if res.Status != StatusError {
		t.Fatalf("status = %v, want StatusError", res.Status)
	}
	if res.Err() == nil {
		t.Fatal("Err() should be non-nil")
	}
}

func TestSolveMismatchedLengthsPanics(t *testing.T) {
	w, _ := NewWorkspace(4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched slice lengths")
		}
	}()
	w.Solve(0, 1, []float64{1, 2}, []float64{0}, []float64{1, 1})
}

func TestWorkspaceReusedAcrossSolves(t *testing.T) {
	w, _ := NewWorkspace(8)
	for i := 0; i < 3; i++ {
		res := w.Solve(0, 1, []float64{0, 1, -1}, []float64{1, 0, 0}, []float64{1, -2, -3})
		x1, y1, x2, y2, ok := res.Edge()
		if !ok {
			t.Fatalf("iteration %d: expected edge, got %v", i, res.Status)
		}
		approxEq(t, "x1", x1, -2)
		approxEq(t, "y1", y1, 1)
		approxEq(t, "x2", x2, 3)
		approxEq(t, "y2", y2, 1)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusError:      "error",
		StatusInfeasible: "infeasible",
		StatusUnbounded:  "unbounded",
		StatusEdge:       "edge",
		StatusPoint:      "point",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", s, got, want)
		}
	}
}
