// Package sequence holds the observation-sequence bookkeeping that the
// model-selection and recognition layers consume: per-word bundles of
// variable-length feature-vector sequences, their concatenated
// (X, lengths) views, and deterministic K-fold index partitions.
//
// Data model:
//
//   - Sequence — one performed example of a word: an ordered list of
//     fixed-dimension feature vectors (frames × dims). Immutable once
//     produced by upstream feature extraction.
//   - Bundle — all training Sequences of one word plus a cached dense
//     concatenation: X stacks every frame row-wise, lengths records the
//     per-sequence frame counts. Invariants: sum(lengths) == rows(X) and
//     len(lengths) == number of sequences.
//   - Folds — contiguous K-fold train/test index partitions used by the
//     cross-validated selector. Deterministic: no shuffling, the first
//     n mod k folds are one element longer.
//
// Fold subsets are materialized as fresh (X, lengths) views via
// Concatenate or Bundle.Subset and handed to the fitter as explicit
// arguments; a Bundle is never mutated after construction, which keeps
// concurrent selectors safe without coordination.
//
// All validation failures surface as the package sentinel errors declared
// in types.go and match via errors.Is; no function panics on user input.
package sequence
