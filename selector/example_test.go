package selector_test

import (
	"fmt"
	"sort"

	"github.com/kovarly/hmmsel/selector"
	"github.com/kovarly/hmmsel/sequence"
)

// ramp builds n sequences of `frames` 1-D frames climbing from base.
func ramp(n, frames int, base float64) []sequence.Sequence {
	seqs := make([]sequence.Sequence, n)
	for i := range seqs {
		s := make(sequence.Sequence, frames)
		for f := range s {
			s[f] = []float64{base + float64(f)}
		}
		seqs[i] = s
	}
	return seqs
}

// ExampleSelectAll trains the constant-baseline strategy over a two-word
// vocabulary. Constant never searches, so every word gets the configured
// fallback state count — a deterministic control run.
func ExampleSelectAll() {
	book, err := sequence.NewBundle(ramp(4, 5, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	chocolate, err := sequence.NewBundle(ramp(4, 5, 40))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	train := selector.Table{"BOOK": book, "CHOCOLATE": chocolate}

	sel, err := selector.NewConstant(selector.DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	candidates, err := selector.SelectAll(sel, train)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	words := make([]string, 0, len(candidates))
	for w := range candidates {
		words = append(words, w)
	}
	sort.Strings(words)
	for _, w := range words {
		fmt.Printf("%s: %d states\n", w, candidates[w].NumStates)
	}
	// Output:
	// BOOK: 3 states
	// CHOCOLATE: 3 states
}
