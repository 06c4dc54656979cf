// Package recognize scores unlabeled observation sequences against a table
// of per-word models and emits, for every test sequence, its full score
// table and its top-1 guess.
//
// The routine is pure scoring plus argmax: no fitting, no search. A model
// that cannot score a particular sequence contributes the −Inf sentinel to
// that sequence's score table instead of an error, so one bad pairing never
// aborts a recognition pass.
//
// Determinism: Table preserves insertion order and Recognize walks it in
// that order for every sequence, so total ties resolve to the first word
// added — reproducibly.
//
// The per-sequence loop only reads the frozen table, so callers may shard
// the test set across goroutines, each calling Recognize on its shard.
package recognize
