// Package hmm implements diagonal-covariance Gaussian hidden Markov models:
// log-space forward scoring and seeded, iteration-bounded Baum-Welch fitting.
//
// The package plays the role of the trusted numerical routine behind the
// selection layer: selectors never look inside a Model beyond Score and
// NumFeatures, and every numerical failure surfaces as a sentinel error
// rather than a panic, so a failed fit or score is always a skippable
// candidate upstream.
//
// Model:
//
//   - K discrete hidden states with Markov transitions,
//   - one d-dimensional Gaussian emission per state with diagonal
//     covariance (2·K·d emission parameters),
//   - log-likelihood of a concatenated (X, lengths) view is the sum of
//     per-segment forward-algorithm log-likelihoods.
//
// Fitting:
//
//   - expectation-maximization with a bounded iteration budget,
//   - deterministic seeded initialisation: state means are drawn from
//     distinct random frames, variances start at the global per-dimension
//     variance, start and transition distributions start uniform,
//   - convergence when the log-likelihood delta drops below Fitter.Tol.
//
// Determinism: a fixed Fitter.Seed yields an identical model for identical
// inputs on every run and platform. Seed 0 maps to a fixed default seed so
// the zero value of Fitter is still deterministic.
//
// Complexity: Score is O(T·K²  + T·K·d) per call; one EM iteration is
// O(T·K² + T·K·d). Memory is O(T·K) per scored segment.
package hmm
