package hmm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kovarly/hmmsel/hmm"
)

// gaussianCloud builds rows×dims observations around the given center with
// unit-ish spread, deterministically from seed.
func gaussianCloud(rows, dims int, center float64, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(rows, dims, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < dims; j++ {
			x.Set(i, j, center+rng.NormFloat64())
		}
	}
	return x
}

// TestFit_Sentinels covers every user-triggered fit failure.
func TestFit_Sentinels(t *testing.T) {
	f := hmm.Fitter{Seed: 14}
	x := gaussianCloud(6, 2, 0, 1)

	_, err := f.Fit(x, []int{6}, 0)
	assert.ErrorIs(t, err, hmm.ErrBadStateCount, "zero states must error")

	_, err = f.Fit(nil, []int{6}, 2)
	assert.ErrorIs(t, err, hmm.ErrNilMatrix, "nil matrix must error")

	_, err = f.Fit(x, nil, 2)
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch, "empty lengths must error")

	_, err = f.Fit(x, []int{4, 0, 2}, 2)
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch, "non-positive length must error")

	_, err = f.Fit(x, []int{4}, 2)
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch, "lengths must sum to rows")

	_, err = f.Fit(x, []int{6}, 7)
	assert.ErrorIs(t, err, hmm.ErrTooFewObservations, "more states than frames must error")
}

// TestScore_Sentinels covers the scoring shape contract.
func TestScore_Sentinels(t *testing.T) {
	f := hmm.Fitter{Seed: 14}
	x := gaussianCloud(12, 2, 0, 1)
	m, err := f.Fit(x, []int{6, 6}, 2)
	require.NoError(t, err, "well-posed fit must succeed")

	_, err = m.Score(nil, []int{1})
	assert.ErrorIs(t, err, hmm.ErrNilMatrix)

	_, err = m.Score(gaussianCloud(4, 3, 0, 1), []int{4})
	assert.ErrorIs(t, err, hmm.ErrDimensionMismatch, "frame width must match the model")

	_, err = m.Score(x, []int{5, 5})
	assert.ErrorIs(t, err, hmm.ErrLengthMismatch)
}

// TestFit_SingleStateAnalytic pins the K=1 case to closed form: EM collapses
// to the sample mean and population variance, and the score is the sum of
// per-frame diagonal Gaussian log-densities under those moments.
func TestFit_SingleStateAnalytic(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{1, 2, 3, 6})

	f := hmm.Fitter{Seed: 14}
	m, err := f.Fit(x, []int{4}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumStates())
	assert.Equal(t, 1, m.NumFeatures())

	// mean = 3, E[x^2]-mean^2 = (1+4+9+36)/4 - 9 = 3.5
	norm := distuv.Normal{Mu: 3, Sigma: math.Sqrt(3.5)}
	want := 0.0
	for _, v := range []float64{1, 2, 3, 6} {
		want += norm.LogProb(v)
	}

	got, err := m.Score(x, []int{4})
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9, "K=1 score must match the closed form")
}

// TestFit_Deterministic: identical inputs and seed give identical models
// (compared through their scores on fixed data).
func TestFit_Deterministic(t *testing.T) {
	x := gaussianCloud(30, 2, 0, 7)
	probe := gaussianCloud(10, 2, 0.5, 8)
	f := hmm.Fitter{Seed: 14}

	m1, err := f.Fit(x, []int{10, 10, 10}, 3)
	require.NoError(t, err)
	m2, err := f.Fit(x, []int{10, 10, 10}, 3)
	require.NoError(t, err)

	s1, err := m1.Score(probe, []int{10})
	require.NoError(t, err)
	s2, err := m2.Score(probe, []int{10})
	require.NoError(t, err)
	assert.Equal(t, s1, s2, "same seed must reproduce the same model")
}

// TestFit_SeparatesDistributions: a model fit on data around +5 must score
// its own distribution strictly higher than data around -5.
func TestFit_SeparatesDistributions(t *testing.T) {
	train := gaussianCloud(40, 2, 5, 3)
	f := hmm.Fitter{Seed: 14}
	m, err := f.Fit(train, []int{20, 20}, 2)
	require.NoError(t, err)

	own, err := m.Score(gaussianCloud(10, 2, 5, 4), []int{10})
	require.NoError(t, err)
	other, err := m.Score(gaussianCloud(10, 2, -5, 4), []int{10})
	require.NoError(t, err)
	assert.Greater(t, own, other, "likelihood must prefer the fitted distribution")
}

// TestFit_MultiSegment: segment boundaries matter — scoring the same rows
// as one long segment and as the original segmentation both work, and EM
// accepts many short segments.
func TestFit_MultiSegment(t *testing.T) {
	x := gaussianCloud(24, 3, 1, 9)
	f := hmm.Fitter{Seed: 14, MaxIter: 50}
	m, err := f.Fit(x, []int{8, 8, 8}, 2)
	require.NoError(t, err)

	s, err := m.Score(x, []int{8, 8, 8})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(s) || math.IsInf(s, 0), "score must be finite")

	whole, err := m.Score(x, []int{24})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(whole) || math.IsInf(whole, 0))
}
