// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"errors"
	"math"
)

// Workspace is the fixed-capacity scratch area a solve runs in: the
// conditioned constraint arrays, the slope/intercept form used by the
// prune-and-search engine, and the ceil/floor/tmp index lists. A
// Workspace is acquired once (NewWorkspace, or Init over caller-supplied
// storage) and reused across many Solve calls.
//
// Workspace holds no synchronization primitives and no hidden global
// state. To run solves concurrently, give each goroutine its own
// Workspace.
type Workspace struct {
	capacity int

	// gx, gy, h hold the conditioned constraints, valid over [0, n). dx,
	// y0 hold the slope/y-intercept form of every non-vertical
	// constraint, valid at the indices listed in ceil/floor.
	gx, gy, h []float64
	dx, y0    []float64

	// xIntersect collects candidate pair-intersection x-coordinates
	// within one prune-and-search round; at most capacity/2 can exist.
	xIntersect []float64

	// ceil and floor are disjoint index lists into gx/gy/h/dx/y0: ceil
	// holds constraints with gy < 0 (upper bounds on y), floor holds
	// gy > 0 (lower bounds). tmp is scratch used to rebuild one of these
	// lists within a single pruning pass.
	ceil, floor, tmp                []int
	ceilLen, floorLen, intersectLen int

	// x0, x1 is the current feasible x-interval (possibly +-Inf). r, o
	// are the rotation and offset applied during conditioning; results
	// are back-transformed through them before being returned.
	x0, x1 float64
	r      rotation
	o      point

	// n is the number of conditioned constraints, which may be smaller
	// than the count passed to Solve: trivially-true constraints are
	// dropped during conditioning.
	n int

	iterations int

	// Logger, if non-nil, receives solve-time diagnostics. See LogLevel.
	Logger *Logger
}

// MemSize reports how many float64 elements and how many int elements a
// Storage-free Init call needs to host problems of up to capacity
// constraints: 5 full-length float64 arrays (gx, gy, h, dx, y0) plus one
// half-length array (xIntersect), and 3 full-length int arrays (ceil,
// floor, tmp).
func MemSize(capacity int) (floats, ints int) {
	if capacity < 0 {
		capacity = 0
	}
	return 5*capacity + capacity/2, 3 * capacity
}

var (
	// ErrNegativeCapacity is returned by Init when capacity < 0.
	ErrNegativeCapacity = errors.New("linprog2d: capacity must not be negative")
	// ErrStorageTooSmall is returned by Init when the caller-supplied
	// backing slices are smaller than MemSize(capacity) requires.
	ErrStorageTooSmall = errors.New("linprog2d: storage too small for capacity")
)

// Init places a Workspace able to hold up to capacity constraints inside
// the caller-provided floats and ints backing arrays, which must each be
// at least as long as the corresponding MemSize(capacity) result.
//
// Unlike this algorithm's C ancestor, which carves a workspace out of a
// single raw byte buffer with manual cache-line alignment, a Go port can
// express "caller owns the memory, no allocation on the hot path" with
// two typed slices directly: the Go runtime already guarantees their
// alignment, so there is nothing for this package to compute.
func Init(capacity int, floats []float64, ints []int) (*Workspace, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	needFloats, needInts := MemSize(capacity)
	if len(floats) < needFloats || len(ints) < needInts {
		return nil, ErrStorageTooSmall
	}

	w := &Workspace{capacity: capacity}
	fo, io := 0, 0
	next := func(n int) []float64 { s := floats[fo : fo+n]; fo += n; return s }
	nextInt := func(n int) []int { s := ints[io : io+n]; io += n; return s }

	w.gx, w.gy, w.h = next(capacity), next(capacity), next(capacity)
	w.dx, w.y0 = next(capacity), next(capacity)
	w.xIntersect = next(capacity / 2)
	w.ceil, w.floor, w.tmp = nextInt(capacity), nextInt(capacity), nextInt(capacity)

	w.resetFor(0)
	return w, nil
}

// NewWorkspace allocates and returns a Workspace able to hold up to
// capacity constraints, owning its own backing storage. This is the
// convenience path for callers that don't need to control where the
// scratch memory lives; SolveSimple uses it internally.
func NewWorkspace(capacity int) (*Workspace, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	nf, ni := MemSize(capacity)
	return Init(capacity, make([]float64, nf), make([]int, ni))
}

// Capacity reports the maximum number of constraints w can solve.
func (w *Workspace) Capacity() int {
	return w.capacity
}

// Reset clears w back to an empty problem, discarding any state left
// over from a previous Solve call. Solve calls this internally on entry,
// so callers normally never need to call it directly; it is exposed for
// the rare case of wanting to drop a Workspace's state without starting
// a new solve (e.g. before inspecting Logger output from a partial run).
func (w *Workspace) Reset() {
	w.resetFor(0)
}

func (w *Workspace) resetFor(n int) {
	w.ceilLen, w.floorLen, w.intersectLen = 0, 0, 0
	w.x0, w.x1 = math.Inf(-1), math.Inf(1)
	w.r = rotation{}
	w.o = point{}
	w.n = n
	w.iterations = 0
}
