package markov

import (
	"errors"
	"strings"
	"testing"
)

// seqSource replays a fixed sequence of values, cycling when exhausted.
// Feeding 0 always selects the first available index; feeding the maximum
// uint32 (which is 1 mod 2) selects the last index of every two-way choice.
type seqSource struct {
	values []uint32
	i      int
}

func (s *seqSource) Next() uint32 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func TestGenerateDeterministicWalks(t *testing.T) {
	m, err := Build("a b c. a b d.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	testCases := []struct {
		name string
		rng  RandomSource
		want string
	}{
		{
			name: "always first index",
			rng:  &seqSource{values: []uint32{0}},
			want: "a b c",
		},
		{
			name: "always last index",
			rng:  &seqSource{values: []uint32{^uint32(0)}},
			want: "a b d",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Generate(tc.rng)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Generate() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGenerateStarterWithoutTransitions(t *testing.T) {
	// "x y" starts a sentence but is never followed by anything; selecting it
	// must return exactly the starter phrase.
	m, err := Build("x y. a b c.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	got, err := m.Generate(&seqSource{values: []uint32{0}})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got != "x y" {
		t.Errorf("Generate() = %q, want %q", got, "x y")
	}
}

func TestGenerateNoModel(t *testing.T) {
	var m Model
	if _, err := m.Generate(NewRandSource()); !errors.Is(err, ErrNoModel) {
		t.Errorf("expected ErrNoModel, got %v", err)
	}
}

func TestGenerateWordLimit(t *testing.T) {
	// "a" always transitions back to "a": an unbreakable cycle.
	m, err := Build("a a a a.", 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	_, err = m.Generate(&seqSource{values: []uint32{0}})
	var limitErr *WordLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *WordLimitError, got %v", err)
	}
	if limitErr.Words != DefaultWordLimit {
		t.Errorf("Words = %d, want %d", limitErr.Words, DefaultWordLimit)
	}
	if limitErr.Partial == "" || !strings.HasPrefix(limitErr.Partial, "a") {
		t.Errorf("Partial = %q, want the accumulated sentence", limitErr.Partial)
	}
	if !strings.Contains(limitErr.Error(), "word limit") {
		t.Errorf("unexpected error text: %v", limitErr)
	}
}

func TestGenerateWithWordLimitOption(t *testing.T) {
	m, err := Build("a a a a.", 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	_, err = m.Generate(&seqSource{values: []uint32{0}}, WithWordLimit(10))
	var limitErr *WordLimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected *WordLimitError, got %v", err)
	}
	if limitErr.Words != 10 {
		t.Errorf("Words = %d, want 10", limitErr.Words)
	}
}

func TestGenerateAcyclicAlwaysTerminates(t *testing.T) {
	m, err := Build("one fish two fish. red fish blue fish.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	rng := NewSeededSource(7, 11)
	for i := 0; i < 50; i++ {
		out, err := m.Generate(rng)
		if err != nil {
			t.Fatalf("Generate failed on iteration %d: %v", i, err)
		}
		if len(strings.Fields(out)) >= DefaultWordLimit {
			t.Fatalf("acyclic model produced %d words", len(strings.Fields(out)))
		}
	}
}

func TestSeededSourceIsReplayable(t *testing.T) {
	a, b := NewSeededSource(1, 2), NewSeededSource(1, 2)
	for i := 0; i < 32; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("seeded sources diverged at step %d: %d != %d", i, x, y)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	m, err := Build(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 200), 2)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	rng := NewSeededSource(1, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := m.Generate(rng)
		if err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
		b.SetBytes(int64(len(s)))
	}
}
