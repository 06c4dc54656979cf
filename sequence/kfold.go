// SPDX-License-Identifier: MIT
// Package sequence: deterministic K-fold index partitions.
//
// The partition is contiguous and unshuffled: fold f holds a consecutive
// run of indices, and the first n mod k folds are one element longer than
// the rest. Same n and k ⇒ identical folds on every run and platform,
// which keeps cross-validated selection reproducible without threading a
// random source through it.

package sequence

// FoldSplit is one train/test partition of the index range 0..n-1.
// Test holds the held-out contiguous run; Train holds every other index in
// ascending order. The two are disjoint and together cover 0..n-1.
type FoldSplit struct {
	Train []int
	Test  []int
}

// Folds partitions the index range 0..n-1 into k contiguous folds and
// returns one FoldSplit per fold, in fold order.
//
// Contract:
//   - k ≥ 2 (a single fold leaves nothing to hold out),
//   - n ≥ k (otherwise some fold would be empty).
//
// Errors: ErrBadFoldCount, ErrTooFewSequences.
//
// Complexity: O(n·k) time, O(n·k) space (each split owns its slices).
func Folds(n, k int) ([]FoldSplit, error) {
	if k < 2 {
		return nil, ErrBadFoldCount
	}
	if n < k {
		return nil, ErrTooFewSequences
	}

	var (
		base  = n / k
		extra = n % k
		start int
		f     int
	)
	splits := make([]FoldSplit, 0, k)
	for f = 0; f < k; f++ {
		size := base
		if f < extra {
			size++
		}
		stop := start + size

		test := make([]int, 0, size)
		train := make([]int, 0, n-size)
		var i int
		for i = 0; i < n; i++ {
			if i >= start && i < stop {
				test = append(test, i)
			} else {
				train = append(train, i)
			}
		}
		splits = append(splits, FoldSplit{Train: train, Test: test})
		start = stop
	}

	return splits, nil
}
