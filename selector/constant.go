// Package selector: the Constant strategy.

package selector

// Constant is the trivial baseline: no search, no scoring — always the
// configured constant state count. It doubles as a deterministic control
// in comparative evaluation and as the shape every other strategy falls
// back to.
type Constant struct {
	cfg Config
}

// NewConstant validates cfg (with defaulting) and builds the strategy.
//
// Errors: ErrBadStateRange, ErrBadFoldCount.
func NewConstant(cfg Config) (Constant, error) {
	c, err := cfg.normalized()
	if err != nil {
		return Constant{}, err
	}
	return Constant{cfg: c}, nil
}

// Select fits ConstStates states on the word's full training view.
//
// Errors: ErrUnknownWord; ErrNoModel when the single fit fails.
func (s Constant) Select(word string, train Table) (Candidate, error) {
	b, err := s.cfg.bundle(word, train)
	if err != nil {
		return Candidate{}, err
	}

	cand, ok := s.cfg.baseModel(word, b, s.cfg.ConstStates)
	if !ok {
		return Candidate{}, ErrNoModel
	}
	return cand, nil
}
