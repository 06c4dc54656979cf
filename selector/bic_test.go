package selector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kovarly/hmmsel/selector"
)

// TestBIC_ArgminFormula scripts the fit boundary with known per-state-count
// likelihoods and checks the chosen state count against an independently
// recomputed BIC over all candidates.
func TestBIC_ArgminFormula(t *testing.T) {
	ll := map[int]float64{2: -100, 3: -50, 4: -49}

	cfg := selector.DefaultConfig()
	cfg.MinStates, cfg.MaxStates = 2, 4
	cfg.Fit = func(x *mat.Dense, lengths []int, k int) (selector.Model, error) {
		_, c := x.Dims()
		return &scriptedModel{dims: c, score: func(*mat.Dense, []int) (float64, error) {
			return ll[k], nil
		}}, nil
	}

	s, err := selector.NewBIC(cfg)
	require.NoError(t, err)

	b := constBundle(t, 3, 2, 2, 1) // N = 6 frames, d = 2
	cand, err := s.Select("GO", selector.Table{"GO": b})
	require.NoError(t, err)

	// Recompute BIC(k) = -2L + p·lnN with p = k² + 2kd − 1 independently.
	const d = 2
	logN := math.Log(6)
	bestK, bestBIC := 0, math.Inf(1)
	for k := 2; k <= 4; k++ {
		p := float64(k*k + 2*k*d - 1)
		bic := -2*ll[k] + p*logN
		if bic < bestBIC {
			bestK, bestBIC = k, bic
		}
	}

	assert.Equal(t, bestK, cand.NumStates, "selector must return the BIC argmin")
	assert.Equal(t, 3, cand.NumStates, "with these likelihoods the penalty must pick 3")
}

// TestBIC_SkipsUnscorableCandidates: a candidate that fits but cannot score
// is skipped, not selected and not fatal.
func TestBIC_SkipsUnscorableCandidates(t *testing.T) {
	cfg := selector.DefaultConfig()
	cfg.MinStates, cfg.MaxStates = 2, 3
	cfg.Fit = func(x *mat.Dense, lengths []int, k int) (selector.Model, error) {
		_, c := x.Dims()
		return &scriptedModel{dims: c, score: func(*mat.Dense, []int) (float64, error) {
			if k == 2 {
				return 0, assert.AnError // would otherwise win with a huge likelihood
			}
			return -1000, nil
		}}, nil
	}

	s, err := selector.NewBIC(cfg)
	require.NoError(t, err)

	cand, err := s.Select("GO", selector.Table{"GO": constBundle(t, 3, 2, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 3, cand.NumStates, "the unscorable candidate must be skipped")
}
