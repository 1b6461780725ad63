package markov

import (
	"io"
	"log/slog"
	"strings"
)

// Builder constructs Models from corpus text. The zero value is not usable;
// create one with NewBuilder. Builders hold no per-corpus state and may be
// reused across builds.
type Builder struct {
	delimiters []rune
	logger     *slog.Logger
}

// BuildOption configures a Builder.
type BuildOption func(*Builder)

// WithDelimiters replaces the sentence delimiter set. A token ends a
// sentence when its final rune is a member of the set.
func WithDelimiters(delimiters []rune) BuildOption {
	return func(b *Builder) {
		b.delimiters = delimiters
	}
}

// WithLogger sets the logger used during builds. By default all logs are
// discarded.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBuilder returns a Builder with the default delimiter set, customized by
// the given options.
func NewBuilder(opts ...BuildOption) *Builder {
	b := &Builder{
		delimiters: DefaultDelimiters,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build trains a fixed-order model from corpus text. It fails with
// ErrInvalidWindowSize when order is below one, with ErrNoStarters when no
// sentence boundary occurs at or after a complete window, and with
// ErrNoPhrases when no complete phrase is ever followed by another token.
func (b *Builder) Build(corpus string, order int) (*Model, error) {
	window, err := NewWindow(order)
	if err != nil {
		return nil, err
	}

	m := &Model{
		order:       order,
		transitions: make(map[string][]Transition),
	}

	// count is the number of tokens placed since the last sentence reset;
	// previous is the phrase formed one token ago, if any.
	var count int
	var previous string
	var havePrevious bool

	for _, token := range Tokens(corpus) {
		terminator := isTerminator(token, b.delimiters)
		if terminator {
			token = trimTerminator(token)
			if token == "" {
				// A bare delimiter is a boundary, not a token.
				havePrevious = false
				count = 0
				continue
			}
		}

		window.Set(count, token)
		count++

		if count < order {
			if terminator {
				havePrevious = false
				count = 0
			}
			continue
		}

		phrase := strings.Join(window.Snapshot(count), " ")

		if !havePrevious {
			m.starters = append(m.starters, phrase)
		} else {
			m.transitions[previous] = append(m.transitions[previous], Transition{Next: phrase, Word: token})
		}
		previous = phrase
		havePrevious = true

		if terminator {
			havePrevious = false
			count = 0
		}
	}

	if len(m.starters) == 0 {
		return nil, ErrNoStarters
	}
	if len(m.transitions) == 0 {
		return nil, ErrNoPhrases
	}

	b.logger.Info("Model built",
		slog.Int("order", order),
		slog.Int("starter_phrases", len(m.starters)),
		slog.Int("phrases", len(m.transitions)),
		slog.Int("transitions", m.TransitionCount()),
	)

	return m, nil
}

// Build trains a model with the default Builder configuration. It is
// shorthand for NewBuilder().Build(corpus, order).
func Build(corpus string, order int) (*Model, error) {
	return NewBuilder().Build(corpus, order)
}
