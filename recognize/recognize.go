// Package recognize: the scoring + argmax routine.

package recognize

import "math"

// Recognize scores every test item against every model of the table and
// returns two parallel slices indexed like items: the per-item score
// tables and the per-item best-guess words.
//
// Contract:
//   - t must be non-nil and non-empty; items may be empty (both outputs
//     come back empty).
//   - a scoring failure for one (model, item) pairing records the −Inf
//     sentinel and the pass continues; the guess resolves among whatever
//     scored (on a total tie, the first word in table order wins).
//
// Errors: ErrNilTable, ErrEmptyTable. Nothing else: per-pairing failures
// are data, not errors.
//
// Complexity: O(len(items) · t.Len()) Score calls; the per-item loop reads
// only frozen state and is safe to shard across goroutines.
func Recognize(t *Table, items []Item) ([]Scores, []string, error) {
	if t == nil {
		return nil, nil, ErrNilTable
	}
	if len(t.names) == 0 {
		return nil, nil, ErrEmptyTable
	}

	var (
		tables  = make([]Scores, 0, len(items))
		guesses = make([]string, 0, len(items))
		item    Item
	)
	for _, item = range items {
		var (
			scores = make(Scores, len(t.names))
			best   = math.Inf(-1)
			guess  = t.names[0]
			first  = true
			word   string
		)
		for _, word = range t.names {
			ll, err := t.models[word].Score(item.X, item.Lengths)
			if err != nil {
				ll = math.Inf(-1)
			}
			scores[word] = ll

			// Strict > after seeding with the first entry: total ties
			// resolve to the earliest word in table order.
			if first || ll > best {
				best, guess, first = ll, word, false
			}
		}
		tables = append(tables, scores)
		guesses = append(guesses, guess)
	}

	return tables, guesses, nil
}
