// Package recognize: model table, inputs and the sentinel error set.

package recognize

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilTable is returned when Recognize is called with a nil table.
	ErrNilTable = errors.New("recognize: nil model table")

	// ErrEmptyTable is returned when the table holds no models — there is
	// nothing to score against and no guess is definable.
	ErrEmptyTable = errors.New("recognize: empty model table")

	// ErrNilScorer is returned by Table.Add for a nil model.
	ErrNilScorer = errors.New("recognize: nil scorer")

	// ErrDuplicateWord is returned by Table.Add when the word already has
	// a model in the table.
	ErrDuplicateWord = errors.New("recognize: duplicate word")
)

// Scorer is what the recognizer needs from a fitted model. Both *hmm.Model
// and the selector package's Model values satisfy it. Recognize only
// borrows scorers; it never mutates them.
type Scorer interface {
	Score(x *mat.Dense, lengths []int) (float64, error)
}

// Table is the insertion-ordered word → model mapping built from the
// selection pass. The order words were added is the tie-break order of
// every guess, so build it deterministically (e.g. sorted words).
type Table struct {
	names  []string
	models map[string]Scorer
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{models: make(map[string]Scorer)}
}

// Add registers a model for word, preserving insertion order.
//
// Errors: ErrNilScorer, ErrDuplicateWord.
func (t *Table) Add(word string, m Scorer) error {
	if m == nil {
		return ErrNilScorer
	}
	if _, ok := t.models[word]; ok {
		return ErrDuplicateWord
	}
	t.names = append(t.names, word)
	t.models[word] = m
	return nil
}

// Len returns the number of registered models.
func (t *Table) Len() int { return len(t.names) }

// Words returns the registered words in insertion order. The slice is a
// copy; callers may keep it.
func (t *Table) Words() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Item is one unlabeled test sequence as a concatenated view: X stacks the
// frames of the single sequence and Lengths is its frame count (kept as a
// slice to share the fitter/scorer view contract).
type Item struct {
	X       *mat.Dense
	Lengths []int
}

// Scores maps every word of the table to the log-likelihood its model
// assigned to one test item (−Inf when that model could not score it).
type Scores map[string]float64
