// SPDX-License-Identifier: MIT
// Package hmm: log-space forward-algorithm scoring.

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Score returns the log-likelihood the model assigns to a concatenated
// observation view: the sum over segments of the forward-algorithm
// log-likelihood of each segment.
//
// Contract:
//   - x is rows×d with d == NumFeatures(); lengths partitions the rows into
//     segments (every entry > 0, sum == rows).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrLengthMismatch,
// ErrNumerical (non-finite total, e.g. a frame no state can emit).
//
// Complexity: O(T·K² + T·K·d) time, O(K) extra space.
func (m *Model) Score(x *mat.Dense, lengths []int) (float64, error) {
	if err := validateView(x, lengths, m.numFeatures); err != nil {
		return 0, err
	}

	var (
		total  float64
		offset int
		n      int
	)
	for _, n = range lengths {
		total += m.forward(x, offset, n, nil, nil)
		offset += n
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, ErrNumerical
	}

	return total, nil
}

// forward runs the log-space forward pass over rows offset..offset+n-1 and
// returns the segment log-likelihood.
//
// When logAlpha is non-nil it must be n×K and receives the full trellis
// (needed by the EM E-step); otherwise only two rows are kept. When logB is
// non-nil it must be n×K and receives the per-frame emission log-densities.
func (m *Model) forward(x *mat.Dense, offset, n int, logAlpha, logB [][]float64) float64 {
	var (
		k, j, t int
		prev    = make([]float64, m.numStates)
		curr    = make([]float64, m.numStates)
		terms   = make([]float64, m.numStates)
	)

	for k = 0; k < m.numStates; k++ {
		b := m.logObs(x, offset, k)
		prev[k] = m.logStart[k] + b
		if logB != nil {
			logB[0][k] = b
		}
	}
	if logAlpha != nil {
		copy(logAlpha[0], prev)
	}

	for t = 1; t < n; t++ {
		for k = 0; k < m.numStates; k++ {
			for j = 0; j < m.numStates; j++ {
				terms[j] = prev[j] + m.logTrans[j][k]
			}
			b := m.logObs(x, offset+t, k)
			curr[k] = floats.LogSumExp(terms) + b
			if logB != nil {
				logB[t][k] = b
			}
		}
		prev, curr = curr, prev
		if logAlpha != nil {
			copy(logAlpha[t], prev)
		}
	}

	return floats.LogSumExp(prev)
}

// logObs returns the emission log-density of frame `row` under state k:
// the sum of per-dimension Normal log-pdfs (diagonal covariance).
func (m *Model) logObs(x *mat.Dense, row, k int) float64 {
	var (
		ll float64
		j  int
	)
	for j = 0; j < m.numFeatures; j++ {
		norm := distuv.Normal{Mu: m.means[k][j], Sigma: math.Sqrt(m.vars[k][j])}
		ll += norm.LogProb(x.At(row, j))
	}
	return ll
}
