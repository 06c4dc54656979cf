// SPDX-License-Identifier: MIT
// Package sequence: index-subset concatenation.
//
// Concatenate is the fold-utility contract consumed by the cross-validated
// selector: given an index subset, produce a fresh (X, lengths) view for
// exactly those sequences, in subset order. Returning a fresh matrix (rather
// than a view into shared storage) is what makes fold fitting safe to run
// concurrently with anything else reading the bundle.

package sequence

import "gonum.org/v1/gonum/mat"

// Concatenate stacks the frames of seqs[indices[0]], seqs[indices[1]], …
// row-wise into one dense matrix and records each sequence's frame count.
//
// Contract:
//   - indices must be non-empty and every index in [0, len(seqs)).
//   - the addressed sequences must be non-empty and dimension-consistent.
//
// Postconditions: sum(lengths) == rows(X); len(lengths) == len(indices).
//
// Errors: ErrEmptySubset, ErrIndexOutOfRange, ErrEmptySequence,
// ErrDimensionMismatch.
//
// Complexity: O(selected frames × dims) time and space.
func Concatenate(indices []int, seqs []Sequence) (*mat.Dense, []int, error) {
	if len(indices) == 0 {
		return nil, nil, ErrEmptySubset
	}

	var (
		idx    int
		rows   int
		dims   int
		frame  []float64
	)
	for _, idx = range indices {
		if idx < 0 || idx >= len(seqs) {
			return nil, nil, ErrIndexOutOfRange
		}
		if len(seqs[idx]) == 0 {
			return nil, nil, ErrEmptySequence
		}
		for _, frame = range seqs[idx] {
			if len(frame) == 0 {
				return nil, nil, ErrEmptySequence
			}
			if dims == 0 {
				dims = len(frame)
			}
			if len(frame) != dims {
				return nil, nil, ErrDimensionMismatch
			}
		}
		rows += len(seqs[idx])
	}

	x := mat.NewDense(rows, dims, nil)
	lengths := make([]int, 0, len(indices))

	var row int
	for _, idx = range indices {
		for _, frame = range seqs[idx] {
			x.SetRow(row, frame)
			row++
		}
		lengths = append(lengths, len(seqs[idx]))
	}

	return x, lengths, nil
}

// Subset returns a fresh concatenated (X, lengths) view for the addressed
// sequences of the bundle, in subset order. The bundle itself is untouched;
// the result is independent storage.
//
// Errors: those of Concatenate.
func (b *Bundle) Subset(indices []int) (*mat.Dense, []int, error) {
	return Concatenate(indices, b.seqs)
}
