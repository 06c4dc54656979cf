// Package selector: the discriminative-information-criterion strategy.

package selector

import "math"

// DIC selects the state count with the highest discriminative information
// criterion over the search range:
//
//	DIC(k) = L − mean(anti-L)
//
// where L is the candidate's log-likelihood on the word's own training
// data and the anti-likelihood term is the mean of the same model's
// log-likelihoods on every OTHER word's training data. Higher is better:
// a good candidate fits its own word and fits everything else poorly.
//
// Other words whose scoring fails are skipped from the mean; when no
// cross-word score succeeds the anti-likelihood is taken as −Inf, so the
// candidate always loses to any candidate with a finite term.
type DIC struct {
	cfg Config
}

// NewDIC validates cfg (with defaulting) and builds the strategy.
//
// Errors: ErrBadStateRange, ErrBadFoldCount.
func NewDIC(cfg Config) (DIC, error) {
	c, err := cfg.normalized()
	if err != nil {
		return DIC{}, err
	}
	return DIC{cfg: c}, nil
}

// Select searches the state range and keeps the maximum-DIC candidate.
// A candidate whose fit or own-data score fails is skipped entirely (no
// anti-likelihood is computed for it). Cross-word bundles are visited in
// sorted-name order so tie-breaks are reproducible.
//
// Errors: ErrUnknownWord; ErrNoModel when even the fallback cannot fit.
//
// Complexity: one fit + |vocabulary| scores per state count in the range.
func (s DIC) Select(word string, train Table) (Candidate, error) {
	b, err := s.cfg.bundle(word, train)
	if err != nil {
		return Candidate{}, err
	}

	best, haveBest := s.cfg.baseModel(word, b, s.cfg.ConstStates)

	var (
		x, lengths = b.View()
		others     = otherWords(word, train)
		bestScore  = math.Inf(-1)
		k          int
	)
	for k = s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		cand, ok := s.cfg.baseModel(word, b, k)
		if !ok {
			continue
		}
		own, serr := cand.Model.Score(x, lengths)
		if serr != nil {
			continue
		}

		var (
			antiSum float64
			antiN   int
			other   string
		)
		for _, other = range others {
			ox, olengths := train[other].View()
			anti, aerr := cand.Model.Score(ox, olengths)
			if aerr != nil {
				continue
			}
			antiSum += anti
			antiN++
		}

		dic := math.Inf(-1)
		if antiN > 0 {
			dic = own - antiSum/float64(antiN)
		}
		if dic > bestScore {
			best, bestScore, haveBest = cand, dic, true
		}
	}

	if !haveBest {
		return Candidate{}, ErrNoModel
	}
	return best, nil
}
