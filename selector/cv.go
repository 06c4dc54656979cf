// Package selector: the cross-validated-likelihood strategy.

package selector

import (
	"math"

	"github.com/kovarly/hmmsel/sequence"
)

// CV selects the state count with the highest average held-out
// log-likelihood across K contiguous folds, then refits that state count
// once on the word's entire training set (the fold models were only ever
// evaluation vehicles).
//
// Fold training views are built with Bundle.Subset and passed to the
// fitter as explicit arguments — the bundle is never mutated, so CV
// selections for different words can run concurrently.
type CV struct {
	cfg Config
}

// NewCV validates cfg (with defaulting) and builds the strategy.
//
// Errors: ErrBadStateRange, ErrBadFoldCount.
func NewCV(cfg Config) (CV, error) {
	c, err := cfg.normalized()
	if err != nil {
		return CV{}, err
	}
	return CV{cfg: c}, nil
}

// Select cross-validates every state count in the range and returns the
// winner refitted on the full training set.
//
// Precondition: with fewer sequences than folds the partition is
// ill-defined, so the constant-state fallback is returned without ever
// invoking the fold utility. Folds where fit or score fails are skipped
// from the average; a state count with zero surviving folds averages −Inf
// and cannot win. When no state count wins, or the final full refit fails,
// the constant-state fallback is returned.
//
// Errors: ErrUnknownWord; ErrNoModel when even the fallback cannot fit.
//
// Complexity: FoldCount fits + scores per state count, plus one full refit.
func (s CV) Select(word string, train Table) (Candidate, error) {
	b, err := s.cfg.bundle(word, train)
	if err != nil {
		return Candidate{}, err
	}

	if b.Len() < s.cfg.FoldCount {
		return s.fallback(word, b)
	}

	splits, err := sequence.Folds(b.Len(), s.cfg.FoldCount)
	if err != nil {
		// Unreachable with a normalized config and Len() ≥ FoldCount,
		// kept as a guard rather than a panic.
		return s.fallback(word, b)
	}

	var (
		bestAvg = math.Inf(-1)
		bestK   int
		haveK   bool
		k       int
	)
	for k = s.cfg.MinStates; k <= s.cfg.MaxStates; k++ {
		var (
			sum   float64
			tries int
			sp    sequence.FoldSplit
		)
		for _, sp = range splits {
			ll, ok := s.heldOutScore(b, sp, k)
			if !ok {
				continue
			}
			sum += ll
			tries++
		}

		avg := math.Inf(-1)
		if tries > 0 {
			avg = sum / float64(tries)
		}
		if avg > bestAvg {
			bestAvg, bestK, haveK = avg, k, true
		}
	}

	if haveK {
		// The winning state count is refit on the ENTIRE training set;
		// fold-trained intermediates are discarded.
		if cand, ok := s.cfg.baseModel(word, b, bestK); ok {
			return cand, nil
		}
	}
	return s.fallback(word, b)
}

// heldOutScore fits k states on the training folds and scores the held-out
// fold. ok=false covers every failure along the way: the fold is skipped.
func (s CV) heldOutScore(b *sequence.Bundle, sp sequence.FoldSplit, k int) (float64, bool) {
	trainX, trainLen, err := b.Subset(sp.Train)
	if err != nil {
		return 0, false
	}
	m, err := s.cfg.Fit(trainX, trainLen, k)
	if err != nil {
		return 0, false
	}
	testX, testLen, err := b.Subset(sp.Test)
	if err != nil {
		return 0, false
	}
	ll, err := m.Score(testX, testLen)
	if err != nil {
		return 0, false
	}
	return ll, true
}

// fallback returns the constant-state model, the strategy's "always have a
// model" guarantee.
func (s CV) fallback(word string, b *sequence.Bundle) (Candidate, error) {
	cand, ok := s.cfg.baseModel(word, b, s.cfg.ConstStates)
	if !ok {
		return Candidate{}, ErrNoModel
	}
	return cand, nil
}
