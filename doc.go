// Package hmmsel selects, for every word in an isolated-word recognition
// vocabulary, the best-fitting Gaussian hidden Markov model out of a family
// of candidates differing only in state count, and classifies unlabeled
// observation sequences against the selected models by maximum likelihood.
//
// 🚀 What is hmmsel?
//
//	A small, deterministic library that brings together:
//		• sequence/  — per-word observation bundles, concatenated (X, lengths)
//		  views and deterministic K-fold index partitions
//		• hmm/       — diagonal-covariance Gaussian HMMs: log-space forward
//		  scoring and seeded, iteration-bounded Baum-Welch fitting
//		• selector/  — four interchangeable model-selection strategies:
//		  Constant, BIC, DIC and cross-validated likelihood
//		• recognize/ — score every test sequence against every selected
//		  model and emit per-sequence score tables plus top-1 guesses
//
// ✨ Why choose hmmsel?
//
//   - Deterministic – fixed seeds ⇒ identical selections across runs
//   - Rock-solid guarantees – sentinel errors, no panics on user input;
//     a fit or score failure is a skipped candidate, never a crash
//   - Fallback by construction – every selector returns a model (the
//     constant-state fallback) even when the whole search range fails
//   - Parallel-friendly – selectors for different words and per-sequence
//     recognition share no mutable state
//
// Typical flow:
//
//	train words → one selector per word → model table → Recognize(test)
//
//	go get github.com/kovarly/hmmsel
package hmmsel
