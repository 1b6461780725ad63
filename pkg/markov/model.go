package markov

import "errors"

var (
	// ErrNoPhrases is returned by Build when no phrase of the requested order
	// was ever followed by another token.
	ErrNoPhrases = errors.New("markov: no phrase transitions found in the corpus")
	// ErrNoStarters is returned by Build when no sentence-initial phrase of
	// the requested order could be formed, e.g. when the order exceeds the
	// length of every sentence in the corpus.
	ErrNoStarters = errors.New("markov: no starter phrases of the requested order in the corpus")
	// ErrNoModel is returned by Generate on a model with no starter phrases.
	ErrNoModel = errors.New("markov: model has no starter phrases, build it first")
)

// Transition records that, after some source phrase, Word was observed in
// the corpus, producing the phrase Next (the source's last order-1 tokens
// plus Word).
type Transition struct {
	Next string
	Word string
}

// Model is a trained fixed-order Markov model: the set of phrases that begin
// sentences plus the transitions observed after each phrase. Duplicate
// entries are kept on purpose; they encode observed frequency for sampling.
//
// A Model is immutable once returned by Build. A fresh Build replaces it
// wholesale, it is never updated in place.
type Model struct {
	order       int
	starters    []string
	transitions map[string][]Transition
}

// Order returns the fixed phrase length the model was built with.
func (m *Model) Order() int {
	return m.order
}

// StarterCount returns the number of recorded sentence-starting phrases,
// counting duplicates.
func (m *Model) StarterCount() int {
	return len(m.starters)
}

// PhraseCount returns the number of distinct phrases that have at least one
// recorded transition.
func (m *Model) PhraseCount() int {
	return len(m.transitions)
}

// TransitionCount returns the total number of recorded transitions across
// all phrases, counting duplicates.
func (m *Model) TransitionCount() int {
	var n int
	for _, ts := range m.transitions {
		n += len(ts)
	}
	return n
}

// Starters returns a copy of the recorded starter phrases in observation
// order, duplicates included.
func (m *Model) Starters() []string {
	out := make([]string, len(m.starters))
	copy(out, m.starters)
	return out
}

// Transitions returns a copy of the transitions recorded for phrase, in
// observation order, or nil if the phrase was never followed by a token.
func (m *Model) Transitions(phrase string) []Transition {
	ts, ok := m.transitions[phrase]
	if !ok {
		return nil
	}
	out := make([]Transition, len(ts))
	copy(out, ts)
	return out
}
