// SPDX-License-Identifier: MIT
// Package hmm: model type and the unified sentinel error set.
// All exported functions return these sentinels and callers match them via
// errors.Is. No function panics on user-triggered error conditions.

package hmm

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil observation matrix was passed.
	ErrNilMatrix = errors.New("hmm: nil observation matrix")

	// ErrBadStateCount is returned when a fit is requested with fewer than
	// one hidden state.
	ErrBadStateCount = errors.New("hmm: state count must be at least 1")

	// ErrTooFewObservations is returned when the observation matrix holds
	// fewer frames than the requested number of states, leaving some state
	// with no frame to anchor its initial mean.
	ErrTooFewObservations = errors.New("hmm: fewer frames than states")

	// ErrDimensionMismatch indicates that an observation matrix width does
	// not match the model's feature dimensionality.
	ErrDimensionMismatch = errors.New("hmm: feature dimensionality mismatch")

	// ErrLengthMismatch indicates that the lengths vector is empty, contains
	// a non-positive entry, or does not sum to the matrix row count.
	ErrLengthMismatch = errors.New("hmm: segment lengths do not match matrix rows")

	// ErrNumerical is returned when fitting or scoring produces a
	// non-finite log-likelihood (the numerical routine did not converge on
	// anything usable).
	ErrNumerical = errors.New("hmm: non-finite log-likelihood")
)

// Model is a fitted diagonal-covariance Gaussian HMM.
//
// Models are produced by Fitter.Fit and are immutable afterwards: Score
// only reads, so one Model may serve concurrent scorers without locks.
type Model struct {
	numStates   int
	numFeatures int

	logStart []float64   // K, log initial-state distribution
	logTrans [][]float64 // K × K, logTrans[i][j] = log P(i→j)
	means    [][]float64 // K × d
	vars     [][]float64 // K × d diagonal covariance, floored at minVariance
}

// NumStates returns K, the hidden state count the model was fitted with.
func (m *Model) NumStates() int { return m.numStates }

// NumFeatures returns d, the feature dimensionality of accepted frames.
func (m *Model) NumFeatures() int { return m.numFeatures }

// validateView checks a concatenated (x, lengths) view against the shared
// shape contract: non-nil matrix, strictly positive segment lengths summing
// to the row count, and (when dims > 0) a matching feature width.
//
// Errors: ErrNilMatrix, ErrLengthMismatch, ErrDimensionMismatch.
func validateView(x *mat.Dense, lengths []int, dims int) error {
	if x == nil {
		return ErrNilMatrix
	}
	rows, cols := x.Dims()
	if dims > 0 && cols != dims {
		return ErrDimensionMismatch
	}
	if len(lengths) == 0 {
		return ErrLengthMismatch
	}
	var sum, n int
	for _, n = range lengths {
		if n <= 0 {
			return ErrLengthMismatch
		}
		sum += n
	}
	if sum != rows {
		return ErrLengthMismatch
	}
	return nil
}
