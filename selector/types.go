// Package selector: contracts, configuration and the sentinel error set.
// All strategies return ONLY these sentinels for user-visible failures and
// tests match them via errors.Is. Fit/score failures inside a search are
// not errors — they are skipped candidates.

package selector

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/kovarly/hmmsel/sequence"
)

var (
	// ErrUnknownWord is returned when the requested word has no bundle in
	// the training table (or the table itself is nil).
	ErrUnknownWord = errors.New("selector: word not present in training table")

	// ErrNoModel is returned when every candidate in the search range AND
	// the constant-state fallback failed to fit. It is the only way a
	// selection comes back empty.
	ErrNoModel = errors.New("selector: no candidate model could be fitted")

	// ErrBadStateRange indicates MinStates < 1, MaxStates < MinStates, or
	// ConstStates < 1.
	ErrBadStateRange = errors.New("selector: invalid state-count range")

	// ErrBadFoldCount indicates a cross-validation fold count below 2.
	ErrBadFoldCount = errors.New("selector: fold count must be at least 2")

	// ErrNilSelector is returned by SelectAll when passed a nil strategy.
	ErrNilSelector = errors.New("selector: nil selector")
)

// Model is what a selector needs from a fitted model: a log-likelihood for
// a concatenated observation view and the feature dimensionality (the d of
// the BIC free-parameter count). *hmm.Model satisfies it.
type Model interface {
	Score(x *mat.Dense, lengths []int) (float64, error)
	NumFeatures() int
}

// FitFunc is the typed fit boundary: it returns a fitted model or an error
// meaning "this candidate is unusable". Implementations must not panic.
type FitFunc func(x *mat.Dense, lengths []int, numStates int) (Model, error)

// Candidate is one fitted model tagged with the state count that produced
// it. Ownership transfers to the caller on return from Select.
type Candidate struct {
	Model     Model
	NumStates int
}

// Table maps every vocabulary word to its training bundle. Selectors read
// the whole table (the DIC strategy scores against every other word) but
// never mutate it.
type Table map[string]*sequence.Bundle

// Config carries the shared construction parameters of every strategy.
//
// Zero values fall back to the documented defaults at construction time;
// a nil Fit is replaced by GaussianFitter(MaxIter, Seed).
type Config struct {
	// MinStates..MaxStates is the inclusive state-count search range.
	// Defaults: 2..10.
	MinStates int
	MaxStates int

	// ConstStates is the state count of the Constant strategy and of the
	// universal fallback model. Default: 3.
	ConstStates int

	// FoldCount is the cross-validation fold count (CV only). Default: 3.
	FoldCount int

	// MaxIter bounds the EM iteration budget of the default fitter.
	// Default: 1000.
	MaxIter int

	// Seed is the fitter random seed. Default: 14.
	Seed int64

	// Verbose enables glog diagnostics for fit successes and failures.
	// No behavioral effect.
	Verbose bool

	// Fit is the fit boundary; nil selects the Gaussian HMM fitter.
	Fit FitFunc
}

// Config defaults - single source of truth for zero-value behavior.
const (
	DefaultMinStates   = 2
	DefaultMaxStates   = 10
	DefaultConstStates = 3
	DefaultFoldCount   = 3
	DefaultMaxIter     = 1000
	DefaultSeed        = 14
)

// DefaultConfig returns the documented defaults with a nil Fit (resolved to
// GaussianFitter at construction).
func DefaultConfig() Config {
	return Config{
		MinStates:   DefaultMinStates,
		MaxStates:   DefaultMaxStates,
		ConstStates: DefaultConstStates,
		FoldCount:   DefaultFoldCount,
		MaxIter:     DefaultMaxIter,
		Seed:        DefaultSeed,
	}
}

// Selector is the shared strategy contract: produce exactly one fitted
// candidate for word, judged best by the strategy's criterion. Select never
// panics; fit/score failures inside the search are skipped candidates, and
// ErrNoModel is returned only when nothing at all could be fitted.
type Selector interface {
	Select(word string, train Table) (Candidate, error)
}

// normalized applies defaulting and validates the result.
//
// Errors: ErrBadStateRange, ErrBadFoldCount.
func (c Config) normalized() (Config, error) {
	if c.MinStates == 0 {
		c.MinStates = DefaultMinStates
	}
	if c.MaxStates == 0 {
		c.MaxStates = DefaultMaxStates
	}
	if c.ConstStates == 0 {
		c.ConstStates = DefaultConstStates
	}
	if c.FoldCount == 0 {
		c.FoldCount = DefaultFoldCount
	}
	if c.MaxIter <= 0 {
		c.MaxIter = DefaultMaxIter
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.Fit == nil {
		c.Fit = GaussianFitter(c.MaxIter, c.Seed)
	}

	if c.MinStates < 1 || c.MaxStates < c.MinStates || c.ConstStates < 1 {
		return Config{}, ErrBadStateRange
	}
	if c.FoldCount < 2 {
		return Config{}, ErrBadFoldCount
	}

	return c, nil
}

// bundle resolves word in train, guarding nil tables and nil bundles.
func (c Config) bundle(word string, train Table) (*sequence.Bundle, error) {
	if train == nil {
		return nil, ErrUnknownWord
	}
	b, ok := train[word]
	if !ok || b == nil {
		return nil, ErrUnknownWord
	}
	return b, nil
}
