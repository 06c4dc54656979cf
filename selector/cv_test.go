package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kovarly/hmmsel/selector"
)

// TestCV_InsufficientDataFallsBack: with fewer sequences than folds the
// partition is ill-defined — CV must return base_model(ConstStates) from a
// single full-bundle fit and never touch the fold utility.
func TestCV_InsufficientDataFallsBack(t *testing.T) {
	var calls []fitCall
	cfg := selector.DefaultConfig()
	cfg.Fit = func(x *mat.Dense, lengths []int, k int) (selector.Model, error) {
		r, c := x.Dims()
		calls = append(calls, fitCall{rows: r, numStates: k})
		return &scriptedModel{dims: c, score: func(*mat.Dense, []int) (float64, error) { return 0, nil }}, nil
	}

	s, err := selector.NewCV(cfg)
	require.NoError(t, err)

	// 2 sequences < FoldCount 3; 2×4 = 8 total frames.
	train := selector.Table{"GO": constBundle(t, 2, 4, 2, 1)}
	cand, err := s.Select("GO", train)
	require.NoError(t, err)

	assert.Equal(t, cfg.ConstStates, cand.NumStates)
	require.Len(t, calls, 1, "no folds: exactly one fit")
	assert.Equal(t, fitCall{rows: 8, numStates: cfg.ConstStates}, calls[0],
		"the single fit must see the whole bundle")
}

// TestCV_RefitsWinnerOnFullSet: fold models are evaluation vehicles only.
// The returned model must come from one final fit over the entire training
// set at the winning state count.
func TestCV_RefitsWinnerOnFullSet(t *testing.T) {
	var (
		calls  []fitCall
		models []*scriptedModel
	)
	cfg := selector.DefaultConfig()
	cfg.MinStates, cfg.MaxStates = 2, 3
	cfg.Fit = func(x *mat.Dense, lengths []int, k int) (selector.Model, error) {
		r, c := x.Dims()
		calls = append(calls, fitCall{rows: r, numStates: k})
		m := &scriptedModel{dims: c, score: func(*mat.Dense, []int) (float64, error) {
			if k == 2 {
				return -5, nil // k=2 generalizes better than k=3 (−10)
			}
			return -10, nil
		}}
		models = append(models, m)
		return m, nil
	}

	s, err := selector.NewCV(cfg)
	require.NoError(t, err)

	// 6 sequences × 2 frames × 1 dim = 12 frames; folds(6,3) hold out 2
	// sequences each, so every fold fit sees 8 rows.
	train := selector.Table{"GO": constBundle(t, 6, 2, 1, 1)}
	cand, err := s.Select("GO", train)
	require.NoError(t, err)

	assert.Equal(t, 2, cand.NumStates, "the higher held-out average must win")
	require.Len(t, calls, 7, "3 folds × 2 state counts + 1 final refit")
	for _, c := range calls[:6] {
		assert.Equal(t, 8, c.rows, "fold fits must use only the training folds")
	}
	assert.Equal(t, fitCall{rows: 12, numStates: 2}, calls[6],
		"the final refit must see the full training set")
	assert.Same(t, models[len(models)-1], cand.Model,
		"the returned model must be the full-set refit, not a fold model")
}

// TestCV_AllFoldsFailFallsBack: every fold fit failing means every state
// count averages −Inf; the constant fallback (fit on the full set) wins.
func TestCV_AllFoldsFailFallsBack(t *testing.T) {
	cfg := selector.DefaultConfig()
	cfg.MinStates, cfg.MaxStates = 2, 3
	cfg.Fit = func(x *mat.Dense, lengths []int, k int) (selector.Model, error) {
		r, c := x.Dims()
		if r != 12 {
			return nil, assert.AnError // every fold-sized fit fails
		}
		return &scriptedModel{dims: c, score: func(*mat.Dense, []int) (float64, error) { return 0, nil }}, nil
	}

	s, err := selector.NewCV(cfg)
	require.NoError(t, err)

	train := selector.Table{"GO": constBundle(t, 6, 2, 1, 1)}
	cand, err := s.Select("GO", train)
	require.NoError(t, err)
	assert.Equal(t, cfg.ConstStates, cand.NumStates)
}
