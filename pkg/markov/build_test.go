package markov

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildRecordsStartersAndTransitions(t *testing.T) {
	m, err := Build("a b c. a b d.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	wantStarters := []string{"a b", "a b"}
	if got := m.Starters(); !reflect.DeepEqual(got, wantStarters) {
		t.Errorf("Starters() = %v, want %v", got, wantStarters)
	}

	wantTransitions := []Transition{
		{Next: "b c", Word: "c"},
		{Next: "b d", Word: "d"},
	}
	if got := m.Transitions("a b"); !reflect.DeepEqual(got, wantTransitions) {
		t.Errorf("Transitions(%q) = %v, want %v", "a b", got, wantTransitions)
	}

	if m.Order() != 2 {
		t.Errorf("Order() = %d, want 2", m.Order())
	}
	if m.StarterCount() != 2 || m.PhraseCount() != 1 || m.TransitionCount() != 2 {
		t.Errorf("unexpected counts: starters=%d phrases=%d transitions=%d",
			m.StarterCount(), m.PhraseCount(), m.TransitionCount())
	}
}

func TestBuildInvalidOrder(t *testing.T) {
	if _, err := Build("a b c.", 0); !errors.Is(err, ErrInvalidWindowSize) {
		t.Errorf("Build with order 0: expected ErrInvalidWindowSize, got %v", err)
	}
}

func TestBuildNoStarters(t *testing.T) {
	// Every sentence is shorter than the order, so no complete window ever
	// forms before a reset.
	if _, err := Build("a b. c d. e f.", 5); !errors.Is(err, ErrNoStarters) {
		t.Errorf("expected ErrNoStarters, got %v", err)
	}
	if _, err := Build("", 2); !errors.Is(err, ErrNoStarters) {
		t.Errorf("empty corpus: expected ErrNoStarters, got %v", err)
	}
}

func TestBuildNoPhrases(t *testing.T) {
	// Exactly one full window per sentence, never followed by another token:
	// a starter is recorded but no transition ever is.
	if _, err := Build("c d e f g.", 5); !errors.Is(err, ErrNoPhrases) {
		t.Errorf("expected ErrNoPhrases, got %v", err)
	}
}

func TestBuildTransitionListsNeverEmpty(t *testing.T) {
	m, err := Build("the quick brown fox, jumps over the lazy dog. the quick red fox sleeps!", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for phrase, ts := range m.transitions {
		if len(ts) == 0 {
			t.Errorf("phrase %q maps to an empty transition list", phrase)
		}
	}
}

func TestBuildAbbreviationResetsWindow(t *testing.T) {
	// Terminator detection looks only at the final rune, so "Mr." ends the
	// sentence and the window restarts at "Smith".
	m, err := Build("Mr. Smith went away. Smith went home.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, starter := range m.Starters() {
		if starter == "Mr Smith" {
			t.Errorf("window did not reset after abbreviation: starter %q", starter)
		}
	}
	want := "Smith went"
	if m.Starters()[0] != want {
		t.Errorf("first starter = %q, want %q", m.Starters()[0], want)
	}
}

func TestBuildCustomDelimiters(t *testing.T) {
	b := NewBuilder(WithDelimiters([]rune{';'}))
	m, err := b.Build("a b c; a b d;", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.StarterCount() != 2 {
		t.Errorf("StarterCount() = %d, want 2", m.StarterCount())
	}
	// '.' is no longer a delimiter, so "b." would stay a plain token.
	if got := m.Transitions("a b"); len(got) != 2 || got[0].Word != "c" {
		t.Errorf("Transitions(%q) = %v", "a b", got)
	}
}

func TestBuildBareDelimiterIsBoundaryOnly(t *testing.T) {
	// A lone "." must reset the window without contributing an empty token.
	m, err := Build("a b . a b c.", 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, starter := range m.Starters() {
		if starter != "a b" {
			t.Errorf("unexpected starter %q", starter)
		}
	}
}
