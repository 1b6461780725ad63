package markov

import (
	"fmt"
	"strings"
)

// DefaultWordLimit is the hard cap on generated words. Cycles in the
// transition graph would otherwise produce unbounded output; there is no
// other runaway prevention.
const DefaultWordLimit = 1000

// WordLimitError is returned when a generation walk reaches the word limit.
// It carries the partial sentence accumulated so far for diagnostics.
type WordLimitError struct {
	Words   int
	Partial string
}

func (e *WordLimitError) Error() string {
	return fmt.Sprintf("markov: word limit %d reached for sentence: %s", e.Words, e.Partial)
}

// generateOptions holds the configurable generation parameters.
type generateOptions struct {
	wordLimit int
}

// GenerateOption configures a single Generate call.
type GenerateOption func(*generateOptions)

// WithWordLimit overrides the word cap for one generation. Values below one
// are ignored.
func WithWordLimit(n int) GenerateOption {
	return func(o *generateOptions) {
		if n > 0 {
			o.wordLimit = n
		}
	}
}

// Generate produces one sentence by a random walk over the model. A starter
// phrase is selected with rng, then transitions are followed until a phrase
// with no recorded successors is reached. Duplicate starters and transitions
// bias selection toward what the corpus observed more often.
//
// It fails with ErrNoModel when the model has no starter phrases and with a
// *WordLimitError when the walk reaches the word cap.
func (m *Model) Generate(rng RandomSource, opts ...GenerateOption) (string, error) {
	if len(m.starters) == 0 {
		return "", ErrNoModel
	}

	options := &generateOptions{wordLimit: DefaultWordLimit}
	for _, opt := range opts {
		opt(options)
	}

	var sb strings.Builder
	phrase := m.starters[int(rng.Next()%uint32(len(m.starters)))]
	sb.WriteString(phrase)
	words := m.order

	for {
		choices, ok := m.transitions[phrase]
		if !ok {
			return sb.String(), nil
		}

		words++
		if words >= options.wordLimit {
			return "", &WordLimitError{Words: words, Partial: sb.String()}
		}

		next := choices[int(rng.Next()%uint32(len(choices)))]
		sb.WriteByte(' ')
		sb.WriteString(next.Word)
		phrase = next.Next
	}
}
