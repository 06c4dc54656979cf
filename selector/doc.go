// Package selector chooses, per vocabulary word, the best-fitting hidden
// Markov model out of a family of candidates differing only in state count.
//
// 🚀 What is a selector?
//
//	Every strategy implements the same one-method contract — given a word
//	and the full training table, return a single fitted Candidate — and
//	they differ only in how they judge "best":
//	  • Constant — no search: always the configured constant state count
//	  • BIC      — minimize −2·logL + p·ln N (fit quality vs. complexity)
//	  • DIC      — maximize logL − mean(logL on every other word)
//	    (fit quality vs. discriminative power)
//	  • CV       — maximize average held-out log-likelihood across folds,
//	    then refit the winning state count on the full training set
//
// ✨ Guarantees:
//
//   - Select never panics and never surfaces a fit or score failure: a
//     candidate that cannot be fitted or scored is skipped, and when the
//     whole search range fails the constant-state fallback is returned.
//     The only error a caller can see is ErrNoModel (even the fallback
//     would not fit) or a misuse sentinel (unknown word, bad config).
//   - Deterministic: a fixed Config.Seed reproduces the same chosen state
//     count for identical inputs.
//   - Parallel-friendly: a strategy value is read-only after construction
//     and bundles are never mutated, so selectors for different words may
//     run concurrently with no coordination.
//
// The fit boundary is the typed FitFunc / Model pair, not a concrete HMM:
// GaussianFitter adapts the hmm package as the production fitter, and
// tests inject failing or recording fakes to drive the fallback paths
// without real numerical divergence.
//
// ⚙️ Usage:
//
//	cfg := selector.DefaultConfig()   // states 2..10, fallback 3, seed 14
//	sel, err := selector.NewBIC(cfg)
//	if err != nil { ... }
//	cand, err := sel.Select("BOOK", train)   // train: word → *sequence.Bundle
//	// cand.Model scores test sequences; cand.NumStates is the chosen K.
package selector
