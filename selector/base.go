// Package selector: shared fitting plumbing used by every strategy.

package selector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"

	"github.com/kovarly/hmmsel/hmm"
	"github.com/kovarly/hmmsel/sequence"
)

// GaussianFitter adapts the hmm package as a FitFunc: diagonal covariance,
// the given EM iteration budget and seed. This is the production fitter
// every strategy falls back to when Config.Fit is nil.
func GaussianFitter(maxIter int, seed int64) FitFunc {
	return func(x *mat.Dense, lengths []int, numStates int) (Model, error) {
		m, err := hmm.Fitter{MaxIter: maxIter, Seed: seed}.Fit(x, lengths, numStates)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// baseModel fits a numStates-state model on the bundle's full training
// view. ok=false means "this candidate is unusable" — the caller skips it
// and continues; nothing propagates.
func (c Config) baseModel(word string, b *sequence.Bundle, numStates int) (Candidate, bool) {
	x, lengths := b.View()
	m, err := c.Fit(x, lengths, numStates)
	if err != nil {
		if c.Verbose {
			glog.Infof("selector: fit failed for %q with %d states: %v", word, numStates, err)
		}
		return Candidate{}, false
	}
	if c.Verbose {
		glog.Infof("selector: fitted %q with %d states", word, numStates)
	}
	return Candidate{Model: m, NumStates: numStates}, true
}

// otherWords returns every word of train except this one, sorted, so that
// cross-word scoring always walks the table in one deterministic order.
func otherWords(word string, train Table) []string {
	out := make([]string, 0, len(train))
	var w string
	for w = range train {
		if w != word && train[w] != nil {
			out = append(out, w)
		}
	}
	sort.Strings(out)
	return out
}

// SelectAll runs one strategy over every word of the table in sorted order
// and collects the successful candidates. Words whose selection fails are
// skipped; their errors come back joined so the caller can inspect (or
// ignore) them. The fallback guarantee makes skips rare in practice.
func SelectAll(s Selector, train Table) (map[string]Candidate, error) {
	if s == nil {
		return nil, ErrNilSelector
	}

	var (
		words = make([]string, 0, len(train))
		w     string
		errs  []error
	)
	for w = range train {
		words = append(words, w)
	}
	sort.Strings(words)

	out := make(map[string]Candidate, len(words))
	for _, w = range words {
		cand, err := s.Select(w, train)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", w, err))
			continue
		}
		out[w] = cand
	}

	return out, errors.Join(errs...)
}
