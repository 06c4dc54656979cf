// Package selector: the Bayesian-information-criterion strategy.

package selector

import "math"

// BIC selects the state count with the lowest Bayesian information
// criterion over the search range:
//
//	BIC(k) = −2·L + p·ln N
//
// where L is the model's log-likelihood on its own training data,
// N the total frame count, and p the free-parameter count of a
// diagonal-covariance Gaussian HMM:
//
//	p = k² + 2·k·d − 1
//
// (k·(k−1) transition probabilities + (k−1) start probabilities + k·d
// means + k·d diagonal variances). Lower is better: the −2L term rewards
// fit, the p·ln N term penalizes complexity.
type BIC struct {
	cfg Config
}

// NewBIC validates cfg (with defaulting) and builds the strategy.
//
// Errors: ErrBadStateRange, ErrBadFoldCount.
func NewBIC(cfg Config) (BIC, error) {
	c, err := cfg.normalized()
	if err != nil {
		return BIC{}, err
	}
	return BIC{cfg: c}, nil
}

// Select fits every state count in the range, scores each against the
// word's own training data and keeps the minimum-BIC candidate. Candidates
// that fail to fit or score are skipped. When the whole range fails the
// constant-state fallback is returned unscored ("always have a model").
//
// Errors: ErrUnknownWord; ErrNoModel when even the fallback cannot fit.
//
// Complexity: one fit + one score per state count in the range.
func (s BIC) Select(word string, train Table) (Candidate, error) {
	b, err := s.cfg.bundle(word, train)
	if err != nil {
		return Candidate{}, err
	}

	// Fallback first: it survives untested unless some candidate scores.
	best, haveBest := s.cfg.baseModel(word, b, s.cfg.ConstStates)

	var (
		x, lengths = b.View()
		logN       = math.Log(float64(b.Frames()))
		bestScore  = math.Inf(1)
		k          int
	)
	for k = s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		cand, ok := s.cfg.baseModel(word, b, k)
		if !ok {
			continue
		}
		ll, serr := cand.Model.Score(x, lengths)
		if serr != nil {
			continue
		}

		p := float64(k*k + 2*k*cand.Model.NumFeatures() - 1)
		bic := -2*ll + p*logN
		if bic < bestScore {
			best, bestScore, haveBest = cand, bic, true
		}
	}

	if !haveBest {
		return Candidate{}, ErrNoModel
	}
	return best, nil
}
