// Copyright ©2025 curioloop. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linprog2d

import (
	"math/rand"
	"sort"
	"testing"
)

func TestKthSmallestMatchesSort(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 6, 7, 11, 37, 100, 257}
	rng := rand.New(rand.NewSource(1))

	for _, n := range sizes {
		if n == 0 {
			continue
		}
		src := make([]float64, n)
		for i := range src {
			src[i] = float64(rng.Intn(2*n + 1))
		}

		sorted := append([]float64(nil), src...)
		sort.Float64s(sorted)

		for k := 0; k < n; k++ {
			buf := append([]float64(nil), src...)
			got := kthSmallest(buf, k)
			if got != sorted[k] {
				t.Fatalf("n=%d k=%d: got %v want %v", n, k, got, sorted[k])
			}
		}
	}
}

func TestKthSmallestAllEqual(t *testing.T) {
	buf := make([]float64, 23)
	for i := range buf {
		buf[i] = 7
	}
	for k := 0; k < len(buf); k++ {
		cp := append([]float64(nil), buf...)
		if got := kthSmallest(cp, k); got != 7 {
			t.Fatalf("k=%d: got %v want 7", k, got)
		}
	}
}

func TestKthSmallestAdversarialAscendingDescending(t *testing.T) {
	n := 200
	asc := make([]float64, n)
	desc := make([]float64, n)
	for i := 0; i < n; i++ {
		asc[i] = float64(i)
		desc[i] = float64(n - i)
	}
	for k := 0; k < n; k++ {
		a := append([]float64(nil), asc...)
		if got := kthSmallest(a, k); got != float64(k) {
			t.Fatalf("ascending k=%d: got %v want %v", k, got, float64(k))
		}
		d := append([]float64(nil), desc...)
		if got := kthSmallest(d, k); got != float64(k+1) {
			t.Fatalf("descending k=%d: got %v want %v", k, got, float64(k+1))
		}
	}
}

func TestSortSmallPanicsOverFive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for len(buf) > 5")
		}
	}()
	sortSmall(make([]float64, 6))
}
