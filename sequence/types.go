// SPDX-License-Identifier: MIT
// Package sequence: core types and the unified sentinel error set.
// All functions in this package MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions.

package sequence

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyBundle is returned when a bundle is constructed from zero sequences.
	ErrEmptyBundle = errors.New("sequence: bundle must contain at least one sequence")

	// ErrEmptySequence is returned when any sequence contains zero frames,
	// or when any frame contains zero features.
	ErrEmptySequence = errors.New("sequence: sequence must contain at least one frame")

	// ErrDimensionMismatch indicates that frames disagree on feature
	// dimensionality, within one sequence or across a bundle.
	ErrDimensionMismatch = errors.New("sequence: inconsistent feature dimensionality")

	// ErrIndexOutOfRange indicates that a subset index does not address an
	// existing sequence.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrEmptySubset is returned when a concatenation is requested for an
	// empty index subset.
	ErrEmptySubset = errors.New("sequence: empty index subset")

	// ErrBadFoldCount is returned when a fold partition is requested with
	// fewer than two folds.
	ErrBadFoldCount = errors.New("sequence: fold count must be at least 2")

	// ErrTooFewSequences is returned when there are fewer sequences than
	// requested folds, making a partition ill-defined.
	ErrTooFewSequences = errors.New("sequence: fewer sequences than folds")
)

// Sequence is one observed example of a word: frames × dims, every frame
// carrying the same number of features.
type Sequence [][]float64

// Bundle is the read-only per-word collection of training sequences plus a
// cached concatenated view suitable for HMM fitting and scoring.
//
// Construct via NewBundle; the zero value is not usable.
type Bundle struct {
	seqs    []Sequence
	x       *mat.Dense
	lengths []int
	dims    int
}

// NewBundle validates seqs and builds the concatenated view.
//
// Contract:
//   - len(seqs) ≥ 1, every sequence has ≥ 1 frame,
//   - every frame across every sequence has the same, non-zero width.
//
// Errors: ErrEmptyBundle, ErrEmptySequence, ErrDimensionMismatch.
//
// Complexity: O(total frames × dims) time and space (one dense copy).
func NewBundle(seqs []Sequence) (*Bundle, error) {
	if len(seqs) == 0 {
		return nil, ErrEmptyBundle
	}
	dims, err := commonDims(seqs)
	if err != nil {
		return nil, err
	}

	// Indices 0..n-1 select the whole bundle; reuse the subset path so the
	// cached view and fold views are built by the same code.
	all := make([]int, len(seqs))
	var i int
	for i = range seqs {
		all[i] = i
	}
	x, lengths, err := Concatenate(all, seqs)
	if err != nil {
		return nil, err
	}

	return &Bundle{seqs: seqs, x: x, lengths: lengths, dims: dims}, nil
}

// Len returns the number of sequences in the bundle.
func (b *Bundle) Len() int { return len(b.seqs) }

// Dims returns the feature dimensionality shared by every frame.
func (b *Bundle) Dims() int { return b.dims }

// View returns the cached concatenated observation matrix and the ordered
// per-sequence frame counts. Callers must treat both as read-only.
func (b *Bundle) View() (*mat.Dense, []int) { return b.x, b.lengths }

// Frames returns the total frame count, i.e. the row count of the
// concatenated view (the N of the BIC penalty term).
func (b *Bundle) Frames() int {
	r, _ := b.x.Dims()
	return r
}

// commonDims returns the shared frame width of seqs, validating shape.
func commonDims(seqs []Sequence) (int, error) {
	var dims int
	var s Sequence
	var frame []float64
	for _, s = range seqs {
		if len(s) == 0 {
			return 0, ErrEmptySequence
		}
		for _, frame = range s {
			if len(frame) == 0 {
				return 0, ErrEmptySequence
			}
			if dims == 0 {
				dims = len(frame)
			}
			if len(frame) != dims {
				return 0, ErrDimensionMismatch
			}
		}
	}
	return dims, nil
}
