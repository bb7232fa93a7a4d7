// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

// kthSmallest returns the kth-smallest element (0-indexed) of buf, using
// the median-of-medians selection algorithm. It operates in place and
// runs in worst-case O(len(buf)) time, which is the property the
// prune-and-search engine relies on to stay linear in the constraint
// count.
//
// C.A.R. Hoare's quickselect is only expected-linear; an adversarial
// input can force it quadratic. Blum, Floyd, Pratt, Rivest & Tarjan's
// median-of-medians pivot avoids that by guaranteeing the pivot always
// falls within a constant fraction of the true median.
func kthSmallest(buf []float64, k int) float64 {
	n := len(buf)
	if n <= 5 {
		sortSmall(buf)
		return buf[k]
	}

	// Collapse buf into groups of 5, replacing each group with its own
	// median (computed by the base case) at the front of buf. Any
	// trailing group of fewer than 5 elements is left untouched.
	groups := 0
	for i := 0; i+5 <= n; i, groups = i+5, groups+1 {
		group := buf[i : i+5]
		sortSmall(group)
		buf[groups], group[2] = group[2], buf[groups]
	}

	// The median of the collected group-medians is a pivot guaranteed to
	// be within the middle half of buf, which bounds the recursion depth.
	pivot := median(buf[:groups])

	l := partition(buf, pivot)
	switch {
	case l == k:
		return pivot
	case l > k:
		return kthSmallest(buf[:l], k)
	default:
		return kthSmallest(buf[l+1:], k-l-1)
	}
}

// median returns the element that would sit at len(buf)/2 were buf
// sorted.
func median(buf []float64) float64 {
	return kthSmallest(buf, len(buf)/2)
}

// partition reorders buf in place so that every element strictly less
// than pivot comes first, followed by every element equal to pivot,
// followed by every element strictly greater. Returns the count of
// elements strictly less than pivot.
func partition(buf []float64, pivot float64) int {
	l, r := 0, len(buf)-1
	for i := 0; i <= r; {
		switch {
		case buf[i] < pivot:
			buf[l], buf[i] = buf[i], buf[l]
			l++
			i++
		case buf[i] > pivot:
			buf[r], buf[i] = buf[i], buf[r]
			r--
		default:
			i++
		}
	}
	return l
}

// sortSmall sorts buf in place using a fixed comparator network. Only
// defined for len(buf) <= 5, which is all the base case of kthSmallest
// ever needs.
func sortSmall(buf []float64) {
	swapIfGT := func(x, y int) {
		if buf[y] < buf[x] {
			buf[x], buf[y] = buf[y], buf[x]
		}
	}
	switch len(buf) {
	case 0, 1:
	case 2:
		swapIfGT(0, 1)
	case 3:
		swapIfGT(1, 2)
		swapIfGT(0, 2)
		swapIfGT(0, 1)
	case 4:
		swapIfGT(0, 1)
		swapIfGT(2, 3)
		swapIfGT(0, 2)
		swapIfGT(1, 3)
		swapIfGT(1, 2)
	case 5:
		swapIfGT(0, 1)
		swapIfGT(3, 4)
		swapIfGT(2, 4)
		swapIfGT(2, 3)
		swapIfGT(0, 3)
		swapIfGT(0, 2)
		swapIfGT(1, 4)
		swapIfGT(1, 3)
		swapIfGT(1, 2)
	default:
		panic("linprog2d: sortSmall called with more than 5 elements")
	}
}
