// SPDX-License-Identifier: MIT
// Package hmm: Baum-Welch (expectation-maximization) fitting.
//
// The E-step runs the log-space forward/backward passes per segment and
// accumulates state/transition posteriors; the M-step re-estimates the
// start distribution, transition matrix and per-state diagonal Gaussians
// from the accumulators. States that received no posterior mass in an
// iteration keep their previous parameters instead of dividing by zero.

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultMaxIter bounds the EM iteration budget when Fitter.MaxIter is 0.
	DefaultMaxIter = 1000

	// DefaultTol is the log-likelihood convergence delta when Fitter.Tol is 0.
	DefaultTol = 1e-2

	// minVariance floors every diagonal covariance entry; keeps emission
	// densities finite when a state collapses onto near-identical frames.
	minVariance = 1e-5

	// minPosterior is the total posterior mass below which a state's
	// emission parameters are left untouched in the M-step.
	minPosterior = 1e-10
)

// Fitter fits diagonal-covariance Gaussian HMMs with Baum-Welch EM.
//
// The zero value is usable: MaxIter 0 ⇒ DefaultMaxIter, Tol 0 ⇒ DefaultTol,
// Seed 0 ⇒ the fixed default seed (see rng.go). Fitter is a value type and
// safe to copy; every Fit call owns its RNG and working state, so one
// Fitter may serve concurrent fits.
type Fitter struct {
	MaxIter int
	Tol     float64
	Seed    int64
}

// Fit estimates a numStates-state model from the concatenated view.
//
// Contract:
//   - numStates ≥ 1; x non-nil with at least numStates rows,
//   - lengths partitions the rows (every entry > 0, sum == rows).
//
// Errors: ErrBadStateCount, ErrNilMatrix, ErrLengthMismatch,
// ErrTooFewObservations, ErrNumerical (non-finite likelihood during EM).
//
// Complexity: O(iter·(T·K² + T·K·d)) time, O(T·K) space.
func (f Fitter) Fit(x *mat.Dense, lengths []int, numStates int) (*Model, error) {
	if numStates < 1 {
		return nil, ErrBadStateCount
	}
	if err := validateView(x, lengths, 0); err != nil {
		return nil, err
	}
	rows, dims := x.Dims()
	if rows < numStates {
		return nil, ErrTooFewObservations
	}

	var (
		maxIter = f.MaxIter
		tol     = f.Tol
	)
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}
	if tol <= 0 {
		tol = DefaultTol
	}

	m := f.initModel(x, rows, dims, numStates)

	var (
		prevLL = math.Inf(-1)
		iter   int
	)
	for iter = 0; iter < maxIter; iter++ {
		ll, acc := m.estimate(x, lengths)
		if math.IsNaN(ll) || math.IsInf(ll, 0) {
			return nil, ErrNumerical
		}
		m.maximize(acc, len(lengths))
		if iter > 0 && math.Abs(ll-prevLL) < tol {
			break
		}
		prevLL = ll
	}

	return m, nil
}

// initModel builds the deterministic starting point: uniform start and
// transition distributions, state means drawn from distinct random frames,
// variances at the global per-dimension variance.
func (f Fitter) initModel(x *mat.Dense, rows, dims, numStates int) *Model {
	var (
		rng  = rngFromSeed(f.Seed)
		perm = rng.Perm(rows)
		col  = make([]float64, rows)
		gvar = make([]float64, dims)
		logK = math.Log(float64(numStates))
		k, j int
	)

	for j = 0; j < dims; j++ {
		mat.Col(col, j, x)
		_, v := stat.MeanVariance(col, nil)
		if v < minVariance {
			v = minVariance
		}
		gvar[j] = v
	}

	m := &Model{
		numStates:   numStates,
		numFeatures: dims,
		logStart:    make([]float64, numStates),
		logTrans:    make2D(numStates, numStates),
		means:       make2D(numStates, dims),
		vars:        make2D(numStates, dims),
	}
	for k = 0; k < numStates; k++ {
		m.logStart[k] = -logK
		for j = 0; j < numStates; j++ {
			m.logTrans[k][j] = -logK
		}
		for j = 0; j < dims; j++ {
			m.means[k][j] = x.At(perm[k], j)
			m.vars[k][j] = gvar[j]
		}
	}

	return m
}

// emAccum gathers the E-step sufficient statistics across segments.
type emAccum struct {
	start []float64   // K: posterior of starting in each state
	trans [][]float64 // K×K: expected transition counts
	gamma []float64   // K: total posterior mass per state
	mean  [][]float64 // K×d: posterior-weighted frame sums
	sq    [][]float64 // K×d: posterior-weighted squared-frame sums
}

func newEMAccum(numStates, dims int) *emAccum {
	return &emAccum{
		start: make([]float64, numStates),
		trans: make2D(numStates, numStates),
		gamma: make([]float64, numStates),
		mean:  make2D(numStates, dims),
		sq:    make2D(numStates, dims),
	}
}

// estimate runs the E-step over every segment and returns the total
// log-likelihood together with the accumulated statistics.
func (m *Model) estimate(x *mat.Dense, lengths []int) (float64, *emAccum) {
	var (
		acc    = newEMAccum(m.numStates, m.numFeatures)
		ll     float64
		offset int
		n      int
	)
	for _, n = range lengths {
		ll += m.accumSegment(x, offset, n, acc)
		offset += n
	}
	return ll, acc
}

// accumSegment adds one segment's posteriors to acc and returns the segment
// log-likelihood. A non-finite return poisons the iteration total, which
// Fit converts into ErrNumerical before the statistics are consumed.
func (m *Model) accumSegment(x *mat.Dense, offset, n int, acc *emAccum) float64 {
	var (
		logAlpha = make2D(n, m.numStates)
		logB     = make2D(n, m.numStates)
		k, i, j  int
		t        int
	)

	segLL := m.forward(x, offset, n, logAlpha, logB)
	if math.IsNaN(segLL) || math.IsInf(segLL, 0) {
		return segLL
	}
	logBeta := m.backward(logB, n)

	for t = 0; t < n; t++ {
		for k = 0; k < m.numStates; k++ {
			g := math.Exp(logAlpha[t][k] + logBeta[t][k] - segLL)
			if t == 0 {
				acc.start[k] += g
			}
			acc.gamma[k] += g
			for j = 0; j < m.numFeatures; j++ {
				v := x.At(offset+t, j)
				acc.mean[k][j] += g * v
				acc.sq[k][j] += g * v * v
			}
		}
	}

	for t = 0; t < n-1; t++ {
		for i = 0; i < m.numStates; i++ {
			for j = 0; j < m.numStates; j++ {
				acc.trans[i][j] += math.Exp(
					logAlpha[t][i] + m.logTrans[i][j] + logB[t+1][j] + logBeta[t+1][j] - segLL)
			}
		}
	}

	return segLL
}

// backward computes the log-space backward trellis for one segment from the
// cached emission log-densities.
func (m *Model) backward(logB [][]float64, n int) [][]float64 {
	var (
		lb      = make2D(n, m.numStates)
		terms   = make([]float64, m.numStates)
		t, i, j int
	)
	// lb[n-1][*] is zero from allocation: log 1.
	for t = n - 2; t >= 0; t-- {
		for i = 0; i < m.numStates; i++ {
			for j = 0; j < m.numStates; j++ {
				terms[j] = m.logTrans[i][j] + logB[t+1][j] + lb[t+1][j]
			}
			lb[t][i] = floats.LogSumExp(terms)
		}
	}
	return lb
}

// maximize re-estimates the model parameters from the accumulated
// statistics. Rows and states with no posterior mass keep their previous
// parameters; variances are floored at minVariance.
func (m *Model) maximize(acc *emAccum, numSegments int) {
	var k, i, j int

	for k = 0; k < m.numStates; k++ {
		m.logStart[k] = safeLog(acc.start[k] / float64(numSegments))
	}

	for i = 0; i < m.numStates; i++ {
		rowSum := floats.Sum(acc.trans[i])
		if rowSum <= 0 {
			continue
		}
		for j = 0; j < m.numStates; j++ {
			m.logTrans[i][j] = safeLog(acc.trans[i][j] / rowSum)
		}
	}

	for k = 0; k < m.numStates; k++ {
		g := acc.gamma[k]
		if g < minPosterior {
			continue
		}
		for j = 0; j < m.numFeatures; j++ {
			mu := acc.mean[k][j] / g
			v := acc.sq[k][j]/g - mu*mu
			if v < minVariance {
				v = minVariance
			}
			m.means[k][j] = mu
			m.vars[k][j] = v
		}
	}
}

// safeLog is log with the 0 ⇒ -Inf convention (valid in log-space sums).
func safeLog(p float64) float64 {
	if p <= 0 {
		return math.Inf(-1)
	}
	return math.Log(p)
}

// make2D allocates an r×c matrix of zeros as a slice of rows.
func make2D(r, c int) [][]float64 {
	out := make([][]float64, r)
	var i int
	for i = range out {
		out[i] = make([]float64, c)
	}
	return out
}
